package period

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	periods := r.Group("/payroll-periods")
	{
		periods.GET("", handler.GetAll)
		periods.GET("/:id", handler.GetById)
		periods.POST("", handler.Create)
		periods.POST("/:id/close", handler.Close)
	}
}
