package domain

import "time"

// AuditEvent is the message restaurant-svc publishes for every audited action.
type AuditEvent struct {
	ID             string    `json:"id"`
	RestaurantID   string    `json:"restaurantId"`
	MemberID       string    `json:"memberId"`
	Event          string    `json:"event"`
	Description    string    `json:"description"`
	LogType        string    `json:"logType"`
	AffectedEntity string    `json:"affectedEntity"`
	AffectedID     string    `json:"affectedId"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CounterMember is the sorted-set member an event increments, e.g. "MENU_ITEM:UPDATE".
func (e AuditEvent) CounterMember() string {
	return e.AffectedEntity + ":" + e.LogType
}
