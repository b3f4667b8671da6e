package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panpal-app/backend/internal/models"
	"github.com/panpal-app/backend/internal/service"
	"github.com/panpal-app/backend/internal/testhelpers"
	"github.com/panpal-app/backend/internal/types"
)

func registerRequest() *types.RegisterRequest {
	return &types.RegisterRequest{
		Email:              "tester@example.com",
		Password:           "password123",
		Name:               "Tester",
		Age:                30,
		Gender:             "male",
		HeightCm:           180,
		WeightKg:           80,
		Goal:               types.GoalLoseFat,
		CuisinePreferences: []string{"Chinese"},
		Allergies:          []string{"peanut"},
		CookingTime:        types.CookingTimeMedium,
		Budget:             types.BudgetStandard,
	}
}

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	db := testhelpers.OpenSQLite(t)
	svc := service.NewAuthService(db, "test-secret")

	user, token, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)
	assert.Equal(t, "tester@example.com", user.Email)
	assert.NotEqual(t, "password123", user.PasswordHash)

	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, types.GoalLoseFat, profile.Goal)
	assert.Equal(t, []string{"peanut"}, []string(profile.Allergies))
	assert.Equal(t, types.CookingTimeMedium, profile.CookingTime)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testhelpers.OpenSQLite(t)
	svc := service.NewAuthService(db, "test-secret")

	_, _, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	db := testhelpers.OpenSQLite(t)
	svc := service.NewAuthService(db, "test-secret")

	registered, _, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "tester@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(context.Background(), "tester@example.com", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	db := testhelpers.OpenSQLite(t)
	svc := service.NewAuthService(db, "test-secret")

	user := testhelpers.CreateUser(t, db, "claims@example.com", "password123")

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "claims@example.com", claims.Email)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	db := testhelpers.OpenSQLite(t)
	user := testhelpers.CreateUser(t, db, "claims@example.com", "password123")

	token, err := service.NewAuthService(db, "secret-a").GenerateToken(user)
	require.NoError(t, err)

	_, err = service.NewAuthService(db, "secret-b").ValidateToken(token)
	assert.Error(t, err)
}
