package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every route onto the engine; shared by the server
// binary and the serverless entry point.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Chronos Roster API",
			"version": "1.0.0",
		})
	})

	r.POST("/admin/login", h.Login)

	// Admin Endpoints
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	// Roster Endpoints
	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.GET("/usage", h.GetMyUsage)
		api.GET("/stats", h.GetStats)

		api.POST("/employees", h.CreateEmployee)
		api.GET("/employees", h.ListEmployees)
		api.GET("/employees/:id", h.GetEmployee)
		api.PUT("/employees/:id", h.UpdateEmployee)
		api.DELETE("/employees/:id", h.DeleteEmployee)
		api.POST("/employees/:id/availability", h.AddAvailability)

		api.POST("/schedules", h.CreateSchedule)
		api.GET("/schedules", h.ListSchedules)
		api.GET("/schedules/:id", h.GetSchedule)
		api.POST("/schedules/:id/shifts", h.AddShift)
		api.GET("/schedules/:id/shifts", h.GetScheduleShifts)
		api.GET("/schedules/:id/conflicts", h.CheckConflicts)
		api.GET("/schedules/:id/payroll", h.GetPayroll)
		api.GET("/schedules/:id/export/csv", h.ExportScheduleCSV)

		api.POST("/shifts/:id/assign", h.AssignShift)
		api.POST("/shifts/:id/unassign", h.UnassignShift)
		api.POST("/shifts/:id/publish", h.PublishShift)

		api.POST("/save", h.SaveData)
		api.POST("/load", h.LoadData)
	}
}
