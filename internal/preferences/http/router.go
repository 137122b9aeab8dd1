package http

import "github.com/gin-gonic/gin"

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.GetPreferences)
	rg.PUT("", h.PutPreferences)
	rg.POST("/favorites", h.AddFavorite)
	rg.DELETE("/favorites/:city", h.RemoveFavorite)
	rg.PATCH("/notifications", h.PatchNotificationSettings)
	rg.PATCH("/display", h.PatchDisplaySettings)
}
