package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panpal-app/backend/internal/service"
	"github.com/panpal-app/backend/internal/testhelpers"
	"github.com/panpal-app/backend/internal/types"
)

func TestGetProfileNotFound(t *testing.T) {
	db := testhelpers.OpenSQLite(t)
	svc := service.NewProfileService(db)

	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrProfileNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	db := testhelpers.OpenSQLite(t)
	svc := service.NewProfileService(db)

	user := testhelpers.CreateUser(t, db, "partial@example.com", "password123")
	testhelpers.CreateProfile(t, db, user.ID)

	weight := 75.0
	goal := types.GoalGainMuscle
	updated, err := svc.UpdateProfile(context.Background(), user.ID, &types.UpdateProfileRequest{
		WeightKg: &weight,
		Goal:     &goal,
	})
	require.NoError(t, err)
	assert.Equal(t, 75.0, updated.WeightKg)
	assert.Equal(t, types.GoalGainMuscle, updated.Goal)

	// Untouched fields keep their values.
	assert.Equal(t, 30, updated.Age)
	assert.Equal(t, "male", updated.Gender)
	assert.Equal(t, types.BudgetStandard, updated.Budget)

	reloaded, err := svc.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 75.0, reloaded.WeightKg)
	assert.Equal(t, types.GoalGainMuscle, reloaded.Goal)
}

func TestUpdateProfileClearsAllergies(t *testing.T) {
	db := testhelpers.OpenSQLite(t)
	svc := service.NewProfileService(db)

	user := testhelpers.CreateUser(t, db, "allergy@example.com", "password123")
	profile := testhelpers.CreateProfile(t, db, user.ID)
	profile.Allergies = []string{"peanut", "shrimp"}
	require.NoError(t, db.Save(profile).Error)

	// An empty non-nil slice replaces the list; nil leaves it alone.
	updated, err := svc.UpdateProfile(context.Background(), user.ID, &types.UpdateProfileRequest{
		Allergies: []string{},
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Allergies)

	updated, err = svc.UpdateProfile(context.Background(), user.ID, &types.UpdateProfileRequest{})
	require.NoError(t, err)
	assert.Empty(t, updated.Allergies)
}

func TestGetHealthProfileShape(t *testing.T) {
	db := testhelpers.OpenSQLite(t)
	svc := service.NewProfileService(db)

	user := testhelpers.CreateUser(t, db, "shape@example.com", "password123")
	testhelpers.CreateProfile(t, db, user.ID)

	hp, err := svc.GetHealthProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), hp.UserID)
	assert.Equal(t, types.GoalMaintain, hp.Goal)
	assert.Equal(t, []string{"Chinese", "Western"}, hp.CuisinePreferences)
}
