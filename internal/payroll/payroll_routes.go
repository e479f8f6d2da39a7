package payroll

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, idempotency gin.HandlerFunc) {
	records := r.Group("/payroll-records")
	{
		records.POST("", idempotency, handler.Create)
		records.GET("", handler.GetAll)
		records.GET("/:id", handler.GetByID)
		records.PUT("/:id", handler.Update)
	}

	// Bulk run satu periode; idempotency key melindungi dari double submit.
	r.POST("/payroll-periods/:id/process", idempotency, handler.Process)

	r.GET("/employees/:id/payroll-history", handler.GetEmployeeHistory)
}
