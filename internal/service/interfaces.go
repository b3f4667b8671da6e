package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/panpal-app/backend/internal/models"
	"github.com/panpal-app/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(user *models.User) (string, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// IProfileService defines the interface for health profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	GetHealthProfile(ctx context.Context, userID uuid.UUID) (*types.HealthProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error)
}

// ICatalogService defines the interface for recipe catalog operations
type ICatalogService interface {
	ListRecipes(ctx context.Context) ([]types.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
	SearchRecipes(ctx context.Context, query string) ([]*models.Recipe, error)
}

// ICheckInService defines the interface for check-in and reward operations
type ICheckInService interface {
	Create(ctx context.Context, userID uuid.UUID, req *types.CreateCheckInRequest) (*models.CheckIn, error)
	AttachPhoto(ctx context.Context, userID, checkInID uuid.UUID, contentType string, body io.Reader) (*models.CheckIn, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.CheckIn, error)
	Stats(ctx context.Context, userID uuid.UUID) (*CheckInStats, error)
	ListRewards(ctx context.Context, userID uuid.UUID) ([]models.Reward, error)
	ClaimReward(ctx context.Context, userID, rewardID uuid.UUID) (*models.Reward, error)
}
