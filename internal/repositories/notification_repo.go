package repositories

import "lastkart/internal/models"

// NotificationRepository defines the interface for the notification feed.
// GetAll returns notifications newest first.
type NotificationRepository interface {
	GetAll() ([]models.Notification, error)
	Add(notification models.Notification) error
	Remove(id string) error
}
