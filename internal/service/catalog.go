package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/panpal-app/backend/internal/models"
	"github.com/panpal-app/backend/internal/types"
)

// ErrRecipeNotFound means the catalog has no recipe with the given id.
var ErrRecipeNotFound = errors.New("recipe not found")

const (
	catalogCacheKey = "catalog:recipes"
	catalogCacheTTL = 5 * time.Minute
)

// CatalogService manages the recipe catalog the planner draws from. The
// full snapshot list is cached in Redis; any mutation invalidates it.
type CatalogService struct {
	db     *gorm.DB
	cache  *redis.Client
	logger *zap.Logger
}

// Ensure CatalogService implements ICatalogService
var _ ICatalogService = (*CatalogService)(nil)

// NewCatalogService creates a CatalogService. cache may be nil, in which
// case every read goes to the database.
func NewCatalogService(db *gorm.DB, cache *redis.Client, logger *zap.Logger) *CatalogService {
	return &CatalogService{db: db, cache: cache, logger: logger}
}

// ListRecipes returns snapshots of the whole catalog in insertion order.
// The order matters: planner tie-breaks keep the first maximal candidate.
func (s *CatalogService) ListRecipes(ctx context.Context) ([]types.Recipe, error) {
	if cached := s.cachedSnapshots(ctx); cached != nil {
		return cached, nil
	}

	var rows []models.Recipe
	if err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	snapshots := make([]types.Recipe, len(rows))
	for i := range rows {
		snapshots[i] = rows[i].Snapshot()
	}

	s.storeSnapshots(ctx, snapshots)
	return snapshots, nil
}

// GetRecipe retrieves one catalog entry.
func (s *CatalogService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe adds a catalog entry and embeds its name for search.
func (s *CatalogService) CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	recipe := models.Recipe{
		ID:          uuid.New(),
		Name:        req.Name,
		ImageURL:    req.ImageURL,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		Calories:    req.Nutrition.Calories,
		Protein:     req.Nutrition.Protein,
		Fat:         req.Nutrition.Fat,
		Carbs:       req.Nutrition.Carbs,
		CookingTime: req.CookingTime,
		Difficulty:  req.Difficulty,
		Tags:        req.Tags,
		Cuisine:     req.Cuisine,
		Budget:      req.Budget,
		Embedding:   GenerateEmbedding(req.Name),
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &recipe, nil
}

// UpdateRecipe applies non-zero fields and re-embeds on a name change.
func (s *CatalogService) UpdateRecipe(ctx context.Context, id uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" && req.Name != recipe.Name {
		recipe.Name = req.Name
		recipe.Embedding = GenerateEmbedding(req.Name)
	}
	if req.ImageURL != "" {
		recipe.ImageURL = req.ImageURL
	}
	if req.Ingredients != nil {
		recipe.Ingredients = req.Ingredients
	}
	if req.Steps != nil {
		recipe.Steps = req.Steps
	}
	if req.Nutrition != (types.NutritionInfo{}) {
		recipe.Calories = req.Nutrition.Calories
		recipe.Protein = req.Nutrition.Protein
		recipe.Fat = req.Nutrition.Fat
		recipe.Carbs = req.Nutrition.Carbs
	}
	if req.CookingTime > 0 {
		recipe.CookingTime = req.CookingTime
	}
	if req.Difficulty != "" {
		recipe.Difficulty = req.Difficulty
	}
	if req.Tags != nil {
		recipe.Tags = req.Tags
	}
	if req.Cuisine != "" {
		recipe.Cuisine = req.Cuisine
	}
	if req.Budget != "" {
		recipe.Budget = req.Budget
	}

	if err := s.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return recipe, nil
}

// DeleteRecipe soft-deletes a catalog entry. Plans that already embed the
// recipe keep their snapshot.
func (s *CatalogService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetRecipe(ctx, id); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id).Error; err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// SearchRecipes combines nearest-embedding ordering with keyword matching
// on Postgres, falling back to plain keyword search elsewhere.
func (s *CatalogService) SearchRecipes(ctx context.Context, query string) ([]*models.Recipe, error) {
	var recipes []models.Recipe

	dbQuery := s.db.WithContext(ctx)

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		if s.db.Dialector.Name() == "postgres" {
			vec := GenerateEmbedding(query)
			subQuery := s.db.Model(&models.Recipe{}).
				Select("id, embedding <-> ? as similarity", vec).
				Where("LOWER(name) LIKE ? OR LOWER(cuisine) LIKE ? OR LOWER(tags::text) LIKE ?", like, like, like)

			dbQuery = dbQuery.Joins("JOIN (?) as search ON recipes.id = search.id", subQuery).
				Order("search.similarity ASC")
		} else {
			dbQuery = dbQuery.Where("LOWER(name) LIKE ? OR LOWER(cuisine) LIKE ? OR LOWER(tags) LIKE ?", like, like, like)
		}
	}

	if err := dbQuery.Find(&recipes).Error; err != nil {
		return nil, err
	}

	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

func (s *CatalogService) cachedSnapshots(ctx context.Context) []types.Recipe {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var snapshots []types.Recipe
	if err := json.Unmarshal(raw, &snapshots); err != nil {
		return nil
	}
	return snapshots
}

func (s *CatalogService) storeSnapshots(ctx context.Context, snapshots []types.Recipe) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(snapshots)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, catalogCacheKey, raw, catalogCacheTTL).Err(); err != nil {
		s.logger.Warn("caching recipe catalog failed", zap.Error(err))
	}
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, catalogCacheKey).Err(); err != nil {
		s.logger.Warn("invalidating recipe catalog cache failed", zap.Error(err))
	}
}
