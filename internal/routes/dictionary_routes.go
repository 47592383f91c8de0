package routes

import (
	"github.com/labstack/echo/v4"

	"asset-system/internal/controllers"
)

func runDictionaryRouter(
	secure *echo.Group,
	manufacturers *controllers.ManufacturerController,
	statuses *controllers.StatusController,
	plans *controllers.PlanController,
	associationTypes *controllers.AssociationTypeController,
) {
	m := secure.Group("/manufacturers")
	m.GET("", manufacturers.GetManufacturers)
	m.POST("", manufacturers.CreateManufacturer)
	m.PUT("/:id", manufacturers.UpdateManufacturer)
	m.DELETE("/:id", manufacturers.DeleteManufacturer)

	st := secure.Group("/statuses")
	st.GET("", statuses.GetStatuses)
	st.POST("", statuses.CreateStatus)
	st.PUT("/:id", statuses.UpdateStatus)
	st.DELETE("/:id", statuses.DeleteStatus)

	p := secure.Group("/plans")
	p.GET("", plans.GetPlans)
	p.POST("", plans.CreatePlan)
	p.PUT("/:id", plans.UpdatePlan)
	p.DELETE("/:id", plans.DeletePlan)

	at := secure.Group("/association-types")
	at.GET("", associationTypes.GetAssociationTypes)
	at.POST("", associationTypes.CreateAssociationType)
	at.PUT("/:id", associationTypes.UpdateAssociationType)
}
