package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seedhouse/farmops-api/internal/application/auth"
	"github.com/seedhouse/farmops-api/internal/application/draft"
	appjob "github.com/seedhouse/farmops-api/internal/application/job"
	"github.com/seedhouse/farmops-api/internal/application/report"
	"github.com/seedhouse/farmops-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	EmployeeUC    *usecase.EmployeeUseCase
	LocationUC    *usecase.LocationUseCase
	BoxUC         *usecase.BoxUseCase
	PhysicalBoxUC *usecase.PhysicalBoxUseCase
	CompleteJob   *appjob.CompleteJobUseCase
	DraftUC       *draft.UseCase
	Autosaver     *draft.Autosaver
	ReportUC      *report.UseCase
	JWTSecret     string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (protected, admin only inside the handler)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Put("/:id/status", userHandler.ToggleStatus)
	users.Delete("/:id", userHandler.Delete)

	// Employees (protected)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Put("/:id/active", employeeHandler.SetActive)
	employees.Delete("/:id", employeeHandler.Delete)

	// Storage locations (protected)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", locationHandler.Delete)

	// Boxes: discrete records + scan lookup (protected)
	boxes := protected.Group("/boxes")
	boxHandler := NewBoxHandler(deps.BoxUC)
	boxes.Post("/", boxHandler.Create)
	boxes.Get("/", boxHandler.List)
	boxes.Get("/:box_id", boxHandler.GetByBoxID)

	// Physical boxes: tare registry (protected)
	physicalBoxes := protected.Group("/physical-boxes")
	physicalBoxHandler := NewPhysicalBoxHandler(deps.PhysicalBoxUC)
	physicalBoxes.Post("/", physicalBoxHandler.Create)
	physicalBoxes.Get("/", physicalBoxHandler.List)
	physicalBoxes.Get("/:id", physicalBoxHandler.GetByID)
	physicalBoxes.Put("/:id", physicalBoxHandler.Update)
	physicalBoxes.Delete("/:id", physicalBoxHandler.Delete)

	// Processing jobs: drafts, totals, completion (protected)
	jobs := protected.Group("/jobs")
	jobHandler := NewJobHandler(deps.CompleteJob, deps.DraftUC, deps.Autosaver)
	jobs.Get("/types", jobHandler.ListTypes)
	jobs.Get("/:type/draft", jobHandler.GetDraft)
	jobs.Put("/:type/draft", jobHandler.SaveDraft)
	jobs.Post("/:type/draft/touch", jobHandler.TouchDraft)
	jobs.Delete("/:type/draft", jobHandler.ClearDraft)
	jobs.Post("/:type/totals", jobHandler.Totals)
	jobs.Post("/:type/complete", jobHandler.Complete)

	// Reports viewer and exports (protected)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/", reportHandler.List)
	reports.Get("/export.xlsx", reportHandler.ExportXLSX)
	reports.Post("/bulk-delete", reportHandler.DeleteBulk)
	reports.Post("/delete-year-range", reportHandler.DeleteYearRange)
	reports.Get("/:id", reportHandler.Get)
	reports.Get("/:id/pdf", reportHandler.ExportPDF)
	reports.Delete("/:id", reportHandler.Delete)
}
