package services_test

import (
	"testing"

	"lastkart/internal/models"
	"lastkart/internal/repositories"
	"lastkart/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDirectory(t *testing.T) *services.DirectoryService {
	t.Helper()
	userRepo := repositories.NewMockUserRepository()
	users := []models.User{
		{ID: 2, Name: "Alice Buyer", Email: "alice@buyer.com", Role: models.RoleBuyer},
		{ID: 3, Name: "Bob Retailer", Email: "bob@retailer.com", Role: models.RoleRetailer},
	}
	for i := range users {
		require.NoError(t, userRepo.Create(&users[i]))
	}
	return services.NewDirectoryService(userRepo)
}

func TestDirectoryService_Login(t *testing.T) {
	service := seedDirectory(t)

	user, err := service.Login("Alice@Buyer.com")
	assert.NoError(t, err)
	assert.Equal(t, 2, user.ID)
	assert.Equal(t, models.RoleBuyer, user.Role)

	_, err = service.Login("nobody@nowhere.com")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown account")
}

func TestDirectoryService_Register(t *testing.T) {
	service := seedDirectory(t)

	user, err := service.Register("Dana Dealer", "dana@dealer.com", models.RoleRetailer)
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)

	found, err := service.Login("dana@dealer.com")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestDirectoryService_RegisterDuplicateEmail(t *testing.T) {
	service := seedDirectory(t)

	// Duplicate detection ignores case, like login.
	_, err := service.Register("Imposter", "ALICE@buyer.com", models.RoleBuyer)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestDirectoryService_RegisterRejectsInvalidInput(t *testing.T) {
	service := seedDirectory(t)

	_, err := service.Register("Bad Email", "not-an-email", models.RoleBuyer)
	assert.Error(t, err)

	_, err = service.Register("Bad Role", "new@user.com", models.Role("ghost"))
	assert.Error(t, err)
}
