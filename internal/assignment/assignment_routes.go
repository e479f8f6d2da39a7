package assignment

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	assignments := r.Group("/employee-salary-components")
	{
		assignments.POST("", handler.Create)
		assignments.PUT("/:id", handler.Update)
		assignments.DELETE("/:id", handler.Delete)
	}

	// Daftar assignment per karyawan
	r.GET("/employees/:id/salary-components", handler.GetByEmployee)
}
