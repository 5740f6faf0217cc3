// Package api assembles the HTTP surface of the sales log server.
package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AbhimanyuAhuja12/saleslog-cli/api/handlers"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(db *gorm.DB) *gin.Engine {
	handlers.Init(db)

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		api.GET("/tasks", handlers.ListTasks)
		api.POST("/tasks", handlers.CreateTask)
		api.GET("/tasks/:id", handlers.GetTask)
		api.PUT("/tasks/:id", handlers.UpdateTask)
		api.DELETE("/tasks/:id", handlers.DeleteTask)
	}

	return r
}
