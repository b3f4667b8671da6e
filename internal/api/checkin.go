package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/panpal-app/backend/internal/middleware"
	"github.com/panpal-app/backend/internal/service"
	"github.com/panpal-app/backend/internal/types"
)

// CheckInHandler serves meal check-ins, streak stats and rewards.
type CheckInHandler struct {
	checkins service.ICheckInService
}

// NewCheckInHandler creates a CheckInHandler.
func NewCheckInHandler(checkins service.ICheckInService) *CheckInHandler {
	return &CheckInHandler{checkins: checkins}
}

// Create records a meal check-in. Repeating a slot is idempotent.
func (h *CheckInHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.CreateCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checkIn, err := h.checkins.Create(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record check-in"})
		return
	}

	c.JSON(http.StatusCreated, checkIn)
}

// List returns the caller's check-ins, newest first.
func (h *CheckInHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	checkIns, err := h.checkins.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch check-ins"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"check_ins": checkIns})
}

// Stats returns streak and completion numbers.
func (h *CheckInHandler) Stats(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	stats, err := h.checkins.Stats(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// UploadPhoto attaches a meal photo to an existing check-in.
func (h *CheckInHandler) UploadPhoto(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	checkInID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check-in id"})
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file required"})
		return
	}
	defer func() { _ = file.Close() }()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	checkIn, err := h.checkins.AttachPhoto(c.Request.Context(), userID, checkInID, contentType, file)
	if err != nil {
		if errors.Is(err, service.ErrCheckInNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "check-in not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload photo"})
		return
	}

	c.JSON(http.StatusOK, checkIn)
}

// ListRewards returns the caller's rewards, locked ones included.
func (h *CheckInHandler) ListRewards(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	rewards, err := h.checkins.ListRewards(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch rewards"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}

// ClaimReward marks an unlocked reward as claimed.
func (h *CheckInHandler) ClaimReward(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	rewardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reward id"})
		return
	}

	reward, err := h.checkins.ClaimReward(c.Request.Context(), userID, rewardID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRewardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "reward not found"})
		case errors.Is(err, service.ErrRewardLocked):
			c.JSON(http.StatusConflict, gin.H{"error": "reward not unlocked yet"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to claim reward"})
		}
		return
	}

	c.JSON(http.StatusOK, reward)
}
