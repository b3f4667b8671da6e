// Package router assembles the gin engine from the API handlers.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/panpal-app/backend/internal/api"
	"github.com/panpal-app/backend/internal/middleware"
	"github.com/panpal-app/backend/internal/service"
)

// Handlers groups the API handlers wired into the router.
type Handlers struct {
	Auth     *api.AuthHandler
	Profile  *api.ProfileHandler
	MealPlan *api.MealPlanHandler
	Recipe   *api.RecipeHandler
	Shopping *api.ShoppingHandler
	CheckIn  *api.CheckInHandler
	Health   *api.HealthHandler
}

// SetupRouter configures the application routes. limiter may be nil to
// run without rate limiting (tests, local development without Redis).
func SetupRouter(
	logger *zap.Logger,
	h Handlers,
	authService service.IAuthService,
	limiter *middleware.RateLimiter,
	allowedOrigins []string,
) *gin.Engine {
	api.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(allowedOrigins))

	router.GET("/health", h.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		profile := protected.Group("/profile")
		{
			profile.GET("", h.Profile.GetProfile)
			profile.PUT("", h.Profile.UpdateProfile)
		}

		mealplans := protected.Group("/mealplans")
		{
			if limiter != nil {
				mealplans.POST("/generate", limiter.Middleware(), h.MealPlan.Generate)
			} else {
				mealplans.POST("/generate", h.MealPlan.Generate)
			}
			mealplans.GET("", h.MealPlan.Get)
			mealplans.POST("/regenerate", h.MealPlan.Regenerate)
		}

		recipes := protected.Group("/recipes")
		{
			recipes.GET("", h.Recipe.ListRecipes)
			recipes.GET("/suggestions", h.MealPlan.Suggestions)
			recipes.GET("/:id", h.Recipe.GetRecipe)
			recipes.POST("", h.Recipe.CreateRecipe)
			recipes.PUT("/:id", h.Recipe.UpdateRecipe)
			recipes.DELETE("/:id", h.Recipe.DeleteRecipe)
		}

		shoppingLists := protected.Group("/shopping-lists")
		{
			shoppingLists.POST("/generate", h.Shopping.Generate)
			shoppingLists.GET("", h.Shopping.Get)
			shoppingLists.PATCH("/:id/items/:itemId", h.Shopping.ToggleItem)
		}

		checkins := protected.Group("/checkins")
		{
			checkins.POST("", h.CheckIn.Create)
			checkins.GET("", h.CheckIn.List)
			checkins.GET("/stats", h.CheckIn.Stats)
			checkins.POST("/:id/photo", h.CheckIn.UploadPhoto)
		}

		rewards := protected.Group("/rewards")
		{
			rewards.GET("", h.CheckIn.ListRewards)
			rewards.POST("/:id/claim", h.CheckIn.ClaimReward)
		}
	}

	return router
}
