package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Consignado-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	UserUC     *usecase.UserUseCase
	WineUC     *usecase.WineUseCase
	ReportUC   *usecase.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/summary", customerHandler.Summary)
	customers.Get("/:id", customerHandler.GetDetails)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Wines (metrics antes de :id para que no capture la ruta)
	wines := api.Group("/wines")
	wineHandler := NewWineHandler(deps.WineUC)
	wines.Post("/", wineHandler.Create)
	wines.Get("/", wineHandler.List)
	wines.Get("/metrics", wineHandler.Metrics)
	wines.Get("/:id", wineHandler.Get)
	wines.Get("/:id/details", wineHandler.GetDetails)
	wines.Put("/:id", wineHandler.Update)
	wines.Delete("/:id", wineHandler.Delete)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/consigned-summary", reportHandler.ConsignedSummary)
}
