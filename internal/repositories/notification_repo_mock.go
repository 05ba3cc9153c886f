package repositories

import (
	"fmt"
	"sync"

	"lastkart/internal/models"
)

// MockNotificationRepository is an in-memory implementation of
// NotificationRepository.
type MockNotificationRepository struct {
	notifications []models.Notification
	mu            sync.RWMutex
}

// NewMockNotificationRepository creates a new instance of
// MockNotificationRepository.
func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{}
}

// GetAll returns the feed, newest first.
func (r *MockNotificationRepository) GetAll() ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	feed := make([]models.Notification, len(r.notifications))
	copy(feed, r.notifications)
	return feed, nil
}

// Add prepends a notification to the feed.
func (r *MockNotificationRepository) Add(notification models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = append([]models.Notification{notification}, r.notifications...)
	return nil
}

// Remove deletes a notification by its ID.
func (r *MockNotificationRepository) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, n := range r.notifications {
		if n.ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("notification with ID %s not found", id)
}
