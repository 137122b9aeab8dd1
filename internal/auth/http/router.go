package http

import "github.com/gin-gonic/gin"

// Register wires the public credential endpoints; Logout goes on the
// authenticated group since it needs a verified uid.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/register", h.RegisterUser)
	rg.POST("/login", h.Login)
}

// RegisterProtected wires the endpoints behind the auth middleware.
func (h *Handler) RegisterProtected(rg *gin.RouterGroup) {
	rg.POST("/logout", h.Logout)
}
