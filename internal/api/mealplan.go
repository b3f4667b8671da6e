package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/panpal-app/backend/internal/middleware"
	"github.com/panpal-app/backend/internal/planner"
	"github.com/panpal-app/backend/internal/service"
	"github.com/panpal-app/backend/internal/types"
)

const defaultSuggestionLimit = 10

// MealPlanHandler serves plan generation, retrieval, single-slot
// regeneration and slot suggestions.
type MealPlanHandler struct {
	planner  *planner.Planner
	profiles service.IProfileService
}

// NewMealPlanHandler creates a MealPlanHandler.
func NewMealPlanHandler(pl *planner.Planner, profiles service.IProfileService) *MealPlanHandler {
	return &MealPlanHandler{planner: pl, profiles: profiles}
}

// Generate composes and stores the current week's plan.
func (h *MealPlanHandler) Generate(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	profile, err := h.profiles.GetHealthProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "health profile required before generating a plan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	plan, err := h.planner.Generate(c.Request.Context(), profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate meal plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// Get returns the plan for ?week=YYYY-MM-DD, defaulting to the current
// week. A week with no plan yields an empty shell, not a 404.
func (h *MealPlanHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	week := c.Query("week")
	if week == "" {
		week = planner.WeekStart(time.Now()).Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", week); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be an ISO date (YYYY-MM-DD)"})
		return
	}

	plan, err := h.planner.Get(c.Request.Context(), userID, week)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch meal plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// Regenerate replaces a single (date, mealType) slot in a stored plan.
func (h *MealPlanHandler) Regenerate(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.RegenerateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planner.RegenerateDay(c.Request.Context(), userID, req.Week, req.Date, req.MealType)
	if err != nil {
		switch {
		case errors.Is(err, planner.ErrPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no meal plan for that week"})
		case errors.Is(err, planner.ErrDayNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "date is not part of that week's plan"})
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "health profile required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to regenerate meal"})
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

// Suggestions lists recipes eligible for ?meal_type= under the caller's
// profile, up to ?limit= entries.
func (h *MealPlanHandler) Suggestions(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	mealType := c.Query("meal_type")
	switch mealType {
	case types.MealBreakfast, types.MealLunch, types.MealDinner:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal_type must be breakfast, lunch or dinner"})
		return
	}

	limit := defaultSuggestionLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	suggestions, err := h.planner.Suggestions(c.Request.Context(), userID, mealType, limit)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "health profile required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch suggestions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
