package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meteomotto/go-weather-backend/internal/preferences/domain"
	"github.com/meteomotto/go-weather-backend/internal/preferences/service"
)

type Handler struct {
	prefs *service.Service
}

func NewHandler(prefs *service.Service) *Handler {
	return &Handler{prefs: prefs}
}

// GetPreferences returns the user's document, or defaults for new users.
func (h *Handler) GetPreferences(c *gin.Context) {
	uid := c.GetString("firebase_uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	prefs, exists, err := h.prefs.Load(c.Request.Context(), uid)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs, "exists": exists})
}

// PutPreferences overwrites the full document.
func (h *Handler) PutPreferences(c *gin.Context) {
	uid := c.GetString("firebase_uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var prefs domain.UserPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if prefs.FavoriteCities == nil {
		prefs.FavoriteCities = []string{}
	}

	if err := h.prefs.Save(c.Request.Context(), uid, prefs); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

// AddFavorite adds a city to the favorites list (idempotent).
func (h *Handler) AddFavorite(c *gin.Context) {
	uid := c.GetString("firebase_uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var body struct {
		City string `json:"city" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city is required"})
		return
	}

	prefs, err := h.prefs.AddFavorite(c.Request.Context(), uid, body.City)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

// RemoveFavorite removes a city from the favorites list.
func (h *Handler) RemoveFavorite(c *gin.Context) {
	uid := c.GetString("firebase_uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	city := c.Param("city")
	prefs, err := h.prefs.RemoveFavorite(c.Request.Context(), uid, city)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

// PatchNotificationSettings merges a partial notification update.
func (h *Handler) PatchNotificationSettings(c *gin.Context) {
	uid := c.GetString("firebase_uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var patch domain.NotificationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	prefs, err := h.prefs.UpdateNotificationSettings(c.Request.Context(), uid, patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

// PatchDisplaySettings merges a partial display update.
func (h *Handler) PatchDisplaySettings(c *gin.Context) {
	uid := c.GetString("firebase_uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var patch domain.DisplayPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	prefs, err := h.prefs.UpdateDisplaySettings(c.Request.Context(), uid, patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var storeErr *domain.StoreError
	if errors.As(err, &storeErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": storeErr.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update preferences"})
}
