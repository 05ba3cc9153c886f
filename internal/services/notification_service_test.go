package services_test

import (
	"testing"
	"time"

	"lastkart/internal/models"
	"lastkart/internal/repositories"
	"lastkart/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAlertPublisher is a mock implementation of services.AlertPublisher
type MockAlertPublisher struct {
	mock.Mock
}

func (m *MockAlertPublisher) PublishExpiryAlert(alert map[string]interface{}) error {
	args := m.Called(alert)
	return args.Error(0)
}

var alertNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func TestNotificationService_NotifyDeduplicates(t *testing.T) {
	service := services.NewNotificationService(repositories.NewMockNotificationRepository(), nil, nil)

	require.NoError(t, service.Notify("New deals in the Dairy category have been listed!", models.NotificationInfo))
	require.NoError(t, service.Notify("Fresh bakery items are 50% off today.", models.NotificationInfo))
	require.NoError(t, service.Notify("New deals in the Dairy category have been listed!", models.NotificationInfo))

	feed, err := service.Feed()
	assert.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "Fresh bakery items are 50% off today.", feed[0].Message, "newest first")
	assert.NotEmpty(t, feed[0].ID)

	count, err := service.UnreadCount()
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNotificationService_Dismiss(t *testing.T) {
	service := services.NewNotificationService(repositories.NewMockNotificationRepository(), nil, nil)
	require.NoError(t, service.Notify("going away", models.NotificationInfo))

	feed, err := service.Feed()
	require.NoError(t, err)
	require.Len(t, feed, 1)

	assert.NoError(t, service.Dismiss(feed[0].ID))
	feed, err = service.Feed()
	assert.NoError(t, err)
	assert.Empty(t, feed)

	assert.Error(t, service.Dismiss("no-such-id"))
}

func TestGenerateExpiryAlerts(t *testing.T) {
	retailer := models.User{ID: 3, Name: "Bob Retailer", Email: "bob@retailer.com", Role: models.RoleRetailer}
	catalog := []models.Product{
		listing(1, "Milk", "Dairy", "2.25", "2026-09-02"),    // 3 days out: alert
		listing(2, "Cheese", "Dairy", "9.00", "2026-09-30"),  // far out: no alert
		listing(3, "Old Stock", "Dairy", "1.00", "2026-08-20"), // already expired: no alert
	}

	mockRepo := new(MockProductRepository)
	mockRepo.On("GetByRetailer", 3).Return(catalog, nil).Once()
	publisher := new(MockAlertPublisher)
	publisher.On("PublishExpiryAlert", mock.MatchedBy(func(alert map[string]interface{}) bool {
		return alert["product_id"] == 1 && alert["days_left"] == 3
	})).Return(nil).Once()

	service := services.NewNotificationService(repositories.NewMockNotificationRepository(), mockRepo, publisher)

	alerted, err := service.GenerateExpiryAlerts(retailer, alertNow)
	assert.NoError(t, err)
	assert.Equal(t, 1, alerted)

	feed, err := service.Feed()
	assert.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, `Your product "Milk" is expiring in 3 days.`, feed[0].Message)
	assert.Equal(t, models.NotificationWarning, feed[0].Type)

	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestGenerateExpiryAlerts_SkipsInvalidDates(t *testing.T) {
	retailer := models.User{ID: 4, Name: "FreshMart", Email: "contact@freshmart.com", Role: models.RoleRetailer}
	catalog := []models.Product{
		listing(1, "Mystery", "Dairy", "1.00", "garbled"),
		listing(2, "Salad", "Prepared Meals", "4.49", "2026-08-31"), // 1 day out: alert
	}

	mockRepo := new(MockProductRepository)
	mockRepo.On("GetByRetailer", 4).Return(catalog, nil).Once()

	service := services.NewNotificationService(repositories.NewMockNotificationRepository(), mockRepo, nil)

	alerted, err := service.GenerateExpiryAlerts(retailer, alertNow)
	assert.NoError(t, err)
	assert.Equal(t, 1, alerted)
	mockRepo.AssertExpectations(t)
}

func TestGenerateExpiryAlerts_RunsWithoutBroker(t *testing.T) {
	retailer := models.User{ID: 3, Name: "Bob Retailer", Email: "bob@retailer.com", Role: models.RoleRetailer}
	mockRepo := new(MockProductRepository)
	mockRepo.On("GetByRetailer", 3).Return([]models.Product{
		listing(1, "Milk", "Dairy", "2.25", "2026-09-02"),
	}, nil).Once()

	service := services.NewNotificationService(repositories.NewMockNotificationRepository(), mockRepo, nil)

	alerted, err := service.GenerateExpiryAlerts(retailer, alertNow)
	assert.NoError(t, err)
	assert.Equal(t, 1, alerted)
}
