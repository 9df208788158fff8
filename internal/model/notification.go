package model

import "time"

const (
	NotificationTypeSecurity  = "security"
	NotificationTypeInventory = "inventory"
	NotificationTypeSystem    = "system"
)

type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Priority  int       `json:"priority"` // higher is more urgent
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
