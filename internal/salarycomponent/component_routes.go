package salarycomponent

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	components := r.Group("/salary-components")
	{
		components.GET("", handler.GetAll)
		components.GET("/:id", handler.GetById)
		components.POST("", handler.Create)
		components.PUT("/:id", handler.Update)
		components.DELETE("/:id", handler.Delete)
	}
}
