package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eletroclima/fieldops-service/internal/api/http/handlers"
	"github.com/eletroclima/fieldops-service/internal/auth"
	"github.com/eletroclima/fieldops-service/internal/authz"
	"github.com/eletroclima/fieldops-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Users         *handlers.UsersHandler
	Clients       *handlers.ClientsHandler
	Equipments    *handlers.EquipmentsHandler
	Orders        *handlers.OrdersHandler
	Appointments  *handlers.AppointmentsHandler
	Maintenance   *handlers.MaintenanceHandler
	Installations *handlers.InstallationsHandler
	Tickets       *handlers.TicketsHandler
	Quotes        *handlers.QuotesHandler
	Overtime      *handlers.OvertimeHandler
	Notifications *handlers.NotificationsHandler
	Agenda        *handlers.AgendaHandler
	Search        *handlers.SearchHandler

	AuthMiddleware *auth.Middleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes. Everything under /api/v1 passes through
// the route guard; the guard's own rule table carries the per-prefix access
// requirements.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Authenticate(), auth.RequireAuth())
	authProtected.Get("/me", cfg.Auth.Me)
	authProtected.Post("/password/change", cfg.Auth.ChangePassword)

	api := app.Group("/api/v1", cfg.AuthMiddleware.Authenticate(), auth.Guard(authz.DashboardRules, cfg.Metrics))

	users := api.Group("/users")
	users.Post("", cfg.Users.Create)
	users.Get("", cfg.Users.List)
	users.Get("/technicians", cfg.Users.ListTechnicians)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)
	users.Put("/:id/permissions", cfg.Users.SetPermissions)
	users.Post("/:id/template", cfg.Users.ApplyTemplate)
	users.Put("/:id/active", cfg.Users.SetActive)

	clients := api.Group("/clients")
	clients.Get("/lookup/cnpj/:document", cfg.Clients.LookupCompany)
	clients.Get("/lookup/cep/:code", cfg.Clients.LookupAddress)
	clients.Post("", cfg.Clients.Create)
	clients.Get("", cfg.Clients.List)
	clients.Get("/:id", cfg.Clients.Get)
	clients.Put("/:id", cfg.Clients.Update)
	clients.Delete("/:id", cfg.Clients.Delete)

	equipments := api.Group("/equipments")
	equipments.Post("", cfg.Equipments.Create)
	equipments.Get("", cfg.Equipments.List)
	equipments.Get("/:id", cfg.Equipments.Get)
	equipments.Put("/:id", cfg.Equipments.Update)
	equipments.Delete("/:id", cfg.Equipments.Delete)

	orders := api.Group("/orders")
	orders.Post("", cfg.Orders.Create)
	orders.Get("", cfg.Orders.List)
	orders.Get("/:id", cfg.Orders.Get)
	orders.Put("/:id", cfg.Orders.Update)
	orders.Put("/:id/status", cfg.Orders.ChangeStatus)
	orders.Delete("/:id", cfg.Orders.Delete)

	appointments := api.Group("/appointments")
	appointments.Post("", cfg.Appointments.Create)
	appointments.Get("", cfg.Appointments.List)
	appointments.Get("/:id", cfg.Appointments.Get)
	appointments.Put("/:id", cfg.Appointments.Update)
	appointments.Put("/:id/status", cfg.Appointments.Decide)
	appointments.Post("/:id/convert", cfg.Appointments.Convert)
	appointments.Delete("/:id", cfg.Appointments.Delete)

	maintenance := api.Group("/maintenance")
	maintenance.Post("", cfg.Maintenance.Create)
	maintenance.Get("", cfg.Maintenance.List)
	maintenance.Get("/:id", cfg.Maintenance.Get)
	maintenance.Put("/:id", cfg.Maintenance.Update)
	maintenance.Put("/:id/status", cfg.Maintenance.SetStatus)
	maintenance.Post("/:id/complete", cfg.Maintenance.CompleteVisit)
	maintenance.Delete("/:id", cfg.Maintenance.Delete)

	installations := api.Group("/installations")
	installations.Post("", cfg.Installations.Create)
	installations.Get("", cfg.Installations.List)
	installations.Get("/:id", cfg.Installations.Get)
	installations.Put("/:id", cfg.Installations.Update)
	installations.Put("/:id/status", cfg.Installations.ChangeStatus)
	installations.Delete("/:id", cfg.Installations.Delete)

	tickets := api.Group("/tickets")
	tickets.Post("", cfg.Tickets.Create)
	tickets.Get("", cfg.Tickets.List)
	tickets.Get("/:id", cfg.Tickets.Get)
	tickets.Put("/:id", cfg.Tickets.Update)
	tickets.Put("/:id/status", cfg.Tickets.ChangeStatus)
	tickets.Delete("/:id", cfg.Tickets.Delete)

	quotes := api.Group("/quotes")
	quotes.Post("", cfg.Quotes.Create)
	quotes.Get("", cfg.Quotes.List)
	quotes.Get("/:id", cfg.Quotes.Get)
	quotes.Put("/:id", cfg.Quotes.Update)
	quotes.Put("/:id/status", cfg.Quotes.ChangeStatus)
	quotes.Delete("/:id", cfg.Quotes.Delete)

	overtime := api.Group("/overtime")
	overtime.Post("", cfg.Overtime.Submit)
	overtime.Get("", cfg.Overtime.List)
	overtime.Put("/:id/review", cfg.Overtime.Review)
	overtime.Delete("/:id", cfg.Overtime.Delete)

	notifications := api.Group("/notifications")
	notifications.Get("", cfg.Notifications.List)
	notifications.Get("/stream", cfg.Notifications.Stream)
	notifications.Put("/read-all", cfg.Notifications.MarkAllRead)
	notifications.Put("/:id/read", cfg.Notifications.MarkRead)

	agendaGroup := api.Group("/agenda")
	agendaGroup.Get("", cfg.Agenda.Month)
	agendaGroup.Get("/day", cfg.Agenda.Day)
	agendaGroup.Get("/upcoming", cfg.Agenda.Upcoming)
	agendaGroup.Delete("/:type/:id", cfg.Agenda.DeleteEvent)

	api.Get("/search", cfg.Search.Search)
}
