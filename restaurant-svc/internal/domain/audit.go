package domain

import "time"

type LogType string

const (
	LogCreate LogType = "CREATE"
	LogUpdate LogType = "UPDATE"
	LogDelete LogType = "DELETE"
	LogLogin  LogType = "LOGIN"
)

type AffectedEntity string

const (
	EntityMember     AffectedEntity = "MEMBER"
	EntityCategory   AffectedEntity = "CATEGORY"
	EntityMenuItem   AffectedEntity = "MENU_ITEM"
	EntityComplement AffectedEntity = "MENU_ITEM_OPTIONS"
	EntityRole       AffectedEntity = "ROLE"
	EntityRestaurant AffectedEntity = "RESTAURANT"
)

// LogEntry is an append-only audit record. The same shape is published on
// the audit topic.
type LogEntry struct {
	ID             string         `json:"id"`
	RestaurantID   string         `json:"restaurantId"`
	MemberID       string         `json:"memberId"`
	Event          string         `json:"event"`
	Description    string         `json:"description"`
	LogType        LogType        `json:"logType"`
	AffectedEntity AffectedEntity `json:"affectedEntity"`
	AffectedID     string         `json:"affectedId"`
	CreatedAt      time.Time      `json:"createdAt"`
}
