package routes

import (
	"github.com/labstack/echo/v4"

	"asset-system/internal/controllers"
	"asset-system/pkg/middleware"
)

func runAuthRouter(api *echo.Group, ctl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	auth := api.Group("/auth")
	auth.POST("/login", ctl.Login)
	auth.POST("/refresh", ctl.RefreshToken)
	auth.GET("/me", ctl.Me, authMW.Auth)
}
