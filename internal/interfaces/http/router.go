package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mate-social/internal/application/auth"
	"github.com/jhoicas/mate-social/internal/application/dispenser"
	"github.com/jhoicas/mate-social/internal/application/gate"
	"github.com/jhoicas/mate-social/internal/application/report"
	"github.com/jhoicas/mate-social/internal/application/session"
	"github.com/jhoicas/mate-social/internal/application/suggestion"
	"github.com/jhoicas/mate-social/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Session     *session.Manager
	AuthUC      *auth.AuthUseCase
	Dispensers  *dispenser.Controller
	Suggestions *suggestion.Workflow
	ReportUC    *report.ReportUseCase
}

// Router registra las rutas del host web.
func Router(app *fiber.App, deps RouterDeps) {
	authenticated := GateMiddleware(deps.Session, gate.RequireAuthenticated())
	privileged := GateMiddleware(deps.Session, gate.RequireRole(entity.IsAdminOrEmployee))
	adminOnly := GateMiddleware(deps.Session, gate.RequireRole(entity.IsAdmin))
	normalUser := GateMiddleware(deps.Session, gate.RequireRole(entity.IsNormalUser))

	// Destinos de redirección del gate
	views := NewViewHandler(deps.Session)
	app.Get(gate.RedirectLogin, views.Login)
	app.Get(gate.RedirectHome, authenticated, views.Home)

	api := app.Group("/api")

	// Sesión (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session, deps.Dispensers, deps.Suggestions)
	sessionGroup := api.Group("/session")
	sessionGroup.Post("/login", authHandler.Login)
	sessionGroup.Post("/logout", authHandler.Logout)
	sessionGroup.Get("/", authHandler.Session)
	sessionGroup.Post("/profile/refresh", authHandler.RefreshProfile)
	api.Post("/users/register", authHandler.Register)

	// Dispensers y mapa (lectura pública; la captura de coordenadas alimenta el ABM)
	dispenserHandler := NewDispenserHandler(deps.Dispensers)
	api.Get("/map", dispenserHandler.Map)
	api.Post("/map/select", privileged, dispenserHandler.ArmSelection)
	api.Delete("/map/select", privileged, dispenserHandler.CancelSelection)
	api.Post("/map/click", privileged, dispenserHandler.MapClick)

	dispensers := api.Group("/dispensers")
	dispensers.Get("/", dispenserHandler.List)
	// ABM (Administrador o Administrador Empleado)
	dispensers.Get("/form", privileged, dispenserHandler.Form)
	dispensers.Delete("/form", privileged, dispenserHandler.ResetForm)
	dispensers.Post("/", privileged, dispenserHandler.Create)
	dispensers.Post("/:id/edit", privileged, dispenserHandler.StartEdit)
	dispensers.Put("/:id", privileged, dispenserHandler.Update)
	dispensers.Delete("/:id", privileged, dispenserHandler.Delete)

	// Solicitudes (Usuario Comun)
	suggestionHandler := NewSuggestionHandler(deps.Suggestions)
	api.Post("/solicitudes", normalUser, suggestionHandler.RequestPlacement)

	// Administración (solo Administrador)
	admin := api.Group("/admin", adminOnly)
	admin.Get("/suggestions", suggestionHandler.List)
	admin.Post("/suggestions/cancel", suggestionHandler.CancelAccept)
	admin.Post("/suggestions/accept", suggestionHandler.Accept)
	admin.Post("/suggestions/:id/start", suggestionHandler.StartAccept)
	admin.Post("/employees", authHandler.CreateEmployee)
	reportHandler := NewReportHandler(deps.ReportUC)
	admin.Get("/report.pdf", reportHandler.Export)
}
