package routes

import (
	"github.com/labstack/echo/v4"

	"asset-system/internal/controllers"
)

func runSelectionRouter(secure *echo.Group, ctl *controllers.SelectionController) {
	selections := secure.Group("/selections")
	selections.POST("", ctl.OpenSession)
	selections.PUT("/:session_id", ctl.SaveState)
	selections.GET("/:session_id", ctl.RestoreState)
	selections.DELETE("/:session_id", ctl.DiscardSession)
}
