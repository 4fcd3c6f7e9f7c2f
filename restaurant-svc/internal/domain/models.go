package domain

import "time"

type Restaurant struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Role struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type Member struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurantId"`
	RoleID       string    `json:"roleId"`
	RoleName     string    `json:"role"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HasPassword is false for members that only sign in through a federated provider.
func (m *Member) HasPassword() bool {
	return m.PasswordHash != ""
}

type Category struct {
	ID             string    `json:"id"`
	RestaurantID   string    `json:"restaurantId"`
	Name           string    `json:"name"`
	IsActive       bool      `json:"isActive"`
	TotalMenuItems int       `json:"totalMenuItems"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MenuItem struct {
	ID           string       `json:"id"`
	RestaurantID string       `json:"restaurantId"`
	CategoryID   string       `json:"categoryId"`
	Category     *CategoryRef `json:"category,omitempty"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Price        Money        `json:"price"`
	ImageURL     string       `json:"imageUrl"`
	IsActive     bool         `json:"isActive"`
	Complements  []OptionRef  `json:"complements"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// MenuItemOption is an add-on ("complement") that can be attached to many menu items.
type MenuItemOption struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurantId"`
	Name         string    `json:"name"`
	Price        Money     `json:"price"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type OptionRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price Money  `json:"price"`
}
