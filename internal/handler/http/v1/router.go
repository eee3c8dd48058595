package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1.
// userMiddleware применяется к маршрутам пользователя (аутентификация, лимиты),
// adminMiddleware - к административным.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, userMiddleware []gin.HandlerFunc, adminMiddleware []gin.HandlerFunc) {
	user := api.Group("", userMiddleware...)
	{
		checkIns := user.Group("/checkins")
		checkIns.POST("", h.saveCheckIn)
		checkIns.GET("", h.listCheckIns)
		checkIns.GET("/cooldown", h.getCooldownStatus)
		checkIns.GET("/stats", h.getUserStats)

		user.POST("/nearby", h.findNearbyUsers)
		user.PUT("/location", h.updateLocation)
	}

	admin := api.Group("/admin", adminMiddleware...)
	admin.GET("/stats", h.getStats)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
