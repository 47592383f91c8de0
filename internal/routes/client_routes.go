package routes

import (
	"github.com/labstack/echo/v4"

	"asset-system/internal/controllers"
)

func runClientRouter(secure *echo.Group, ctl *controllers.ClientController) {
	clients := secure.Group("/clients")
	clients.GET("", ctl.GetClients)
	clients.GET("/:uuid", ctl.FindClient)
	clients.POST("", ctl.CreateClient)
	clients.PUT("/:uuid", ctl.UpdateClient)
	clients.DELETE("/:uuid", ctl.DeleteClient)
}
