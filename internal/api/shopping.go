package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/panpal-app/backend/internal/middleware"
	"github.com/panpal-app/backend/internal/planner"
	"github.com/panpal-app/backend/internal/shopping"
	"github.com/panpal-app/backend/internal/types"
)

// ShoppingHandler serves shopping list generation, retrieval and item
// toggling.
type ShoppingHandler struct {
	shopping *shopping.Service
}

// NewShoppingHandler creates a ShoppingHandler.
func NewShoppingHandler(svc *shopping.Service) *ShoppingHandler {
	return &ShoppingHandler{shopping: svc}
}

// Generate builds the list from the week's stored plan.
func (h *ShoppingHandler) Generate(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.GenerateShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.shopping.GenerateForWeek(c.Request.Context(), userID, req.Week)
	if err != nil {
		if errors.Is(err, planner.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no meal plan for that week, generate one first"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate shopping list"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// Get returns the stored list for ?week=, defaulting to the current week.
func (h *ShoppingHandler) Get(c *gin.Context) {
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

	list, err := h.shopping.GetByWeek(c.Request.Context(), userID, week)
	if err != nil {
		if errors.Is(err, shopping.ErrListNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no shopping list for that week"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch shopping list"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// ToggleItem sets one item's checked state.
func (h *ShoppingHandler) ToggleItem(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shopping list id"})
		return
	}

	var req types.ToggleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.shopping.ToggleItem(c.Request.Context(), userID, listID, c.Param("itemId"), *req.IsChecked)
	if err != nil {
		switch {
		case errors.Is(err, shopping.ErrListNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "shopping list not found"})
		case errors.Is(err, shopping.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "shopping list item not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update item"})
		}
		return
	}

	c.JSON(http.StatusOK, list)
}
