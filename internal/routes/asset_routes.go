package routes

import (
	"github.com/labstack/echo/v4"

	"asset-system/internal/controllers"
)

func runAssetRouter(secure *echo.Group, ctl *controllers.AssetController) {
	assets := secure.Group("/assets")
	assets.GET("", ctl.GetAssets)
	assets.GET("/available", ctl.GetAvailableAssets)
	assets.GET("/:id", ctl.FindAsset)
	assets.POST("", ctl.CreateAsset)
	assets.PUT("/:id", ctl.UpdateAsset)
	assets.DELETE("/:id", ctl.DeleteAsset)
}
