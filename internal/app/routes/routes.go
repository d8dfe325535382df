package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/passboard/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, recordController *controllers.RecordController) {
	// Static data file path fetched by dashboard clients
	router.GET("/teacherData.json", recordController.GetDataFile)

	v1 := router.Group("/api/v1")

	records := v1.Group("/records")
	{
		records.GET("", recordController.GetAllRecords)
	}
}
