package services

import (
	"fmt"
	"log"
	"time"

	"lastkart/internal/expiry"
	"lastkart/internal/models"
	"lastkart/internal/repositories"

	"github.com/google/uuid"
)

// AlertPublisher publishes expiry alerts to the message broker.
type AlertPublisher interface {
	PublishExpiryAlert(alert map[string]interface{}) error
}

// NotificationService maintains a user-facing notification feed and
// generates expiry alerts for retailers.
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	productRepo      repositories.ProductRepository
	publisher        AlertPublisher // nil when no broker is wired
}

// NewNotificationService creates a new NotificationService. The publisher
// may be nil; alerts then stay local to the feed.
func NewNotificationService(notificationRepo repositories.NotificationRepository, productRepo repositories.ProductRepository, publisher AlertPublisher) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		productRepo:      productRepo,
		publisher:        publisher,
	}
}

// Notify adds a notification to the feed. A message already present in
// the feed is not added again.
func (s *NotificationService) Notify(message string, notificationType models.NotificationType) error {
	existing, err := s.notificationRepo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load notifications: %w", err)
	}
	for _, n := range existing {
		if n.Message == message {
			return nil
		}
	}
	return s.notificationRepo.Add(models.Notification{
		ID:      uuid.New().String(),
		Message: message,
		Type:    notificationType,
	})
}

// Dismiss removes a notification from the feed.
func (s *NotificationService) Dismiss(id string) error {
	return s.notificationRepo.Remove(id)
}

// Feed returns the notification feed, newest first.
func (s *NotificationService) Feed() ([]models.Notification, error) {
	return s.notificationRepo.GetAll()
}

// UnreadCount returns the number of unread notifications.
func (s *NotificationService) UnreadCount() (int, error) {
	feed, err := s.notificationRepo.GetAll()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range feed {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// GenerateExpiryAlerts adds a warning for each of the retailer's products
// expiring within the dashboard window (but not yet expired), publishing
// each alert to the broker when one is wired. It returns the number of
// products that triggered an alert.
func (s *NotificationService) GenerateExpiryAlerts(retailer models.User, now time.Time) (int, error) {
	products, err := s.productRepo.GetByRetailer(retailer.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to load retailer products: %w", err)
	}

	alerted := 0
	for _, p := range products {
		days, err := expiry.DaysUntil(p.ExpiryDate, now)
		if err != nil {
			log.Printf("Skipping expiry alert for product %d: %v", p.ID, err)
			continue
		}
		if days <= 0 || !expiry.WithinDashboardWindow(days) {
			continue
		}

		message := fmt.Sprintf("Your product %q is expiring in %d days.", p.Name, days)
		if err := s.Notify(message, models.NotificationWarning); err != nil {
			return alerted, err
		}
		alerted++

		if s.publisher != nil {
			alert := map[string]interface{}{
				"retailer_id":  retailer.ID,
				"product_id":   p.ID,
				"product_name": p.Name,
				"days_left":    days,
			}
			if err := s.publisher.PublishExpiryAlert(alert); err != nil {
				log.Printf("Warning: Failed to publish expiry alert for product %d: %v", p.ID, err)
			}
		}
	}
	return alerted, nil
}
