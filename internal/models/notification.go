package models

// NotificationType is the severity shown on a notification banner.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
	NotificationSuccess NotificationType = "success"
)

// Notification is a single entry in a user's notification feed.
type Notification struct {
	ID      string           `json:"id"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
	Read    bool             `json:"read"`
}
