package routes

import (
	"github.com/labstack/echo/v4"

	"asset-system/internal/controllers"
)

func runAssociationRouter(secure *echo.Group, ctl *controllers.AssociationController) {
	associations := secure.Group("/associations")
	associations.GET("", ctl.GetAssociations)
	associations.GET("/groups", ctl.GetGroupedAssociations)
	associations.GET("/summary", ctl.GetSummary)
	associations.GET("/export", ctl.ExportAssociations)
	associations.POST("/validate", ctl.ValidateSelection)
	associations.POST("", ctl.CreateAssociations)
	associations.POST("/:id/assets", ctl.AppendAssets)
	associations.PUT("/:id/end", ctl.EndAssociation)
}
