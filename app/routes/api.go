// Package routes wires every controller onto the named router.
package routes

import (
	"github.com/fabiogif/moday-backoffice/app/controllers"
	appgraphql "github.com/fabiogif/moday-backoffice/app/graphql"
	"github.com/fabiogif/moday-backoffice/app/models"
	"github.com/fabiogif/moday-backoffice/pkg/ctx"
	"github.com/fabiogif/moday-backoffice/pkg/middleware"
	"github.com/fabiogif/moday-backoffice/pkg/router"
)

// RegisterAPI mounts the full /api surface.
func RegisterAPI(r *router.Router) {
	authController := controllers.NewAuthController()
	productController := controllers.NewProductController()
	orderController := controllers.NewOrderController()
	storeHourController := controllers.NewStoreHourController()
	serviceTypeController := controllers.NewServiceTypeController()
	planController := controllers.NewPlanController()
	eventController := controllers.NewEventController()

	api := r.Group("/api")

	// ─── Public ──────────────────────────────────────────────────────────
	api.Post("/register", "auth.register", ctx.Wrap(authController.Register))
	api.Post("/login", "auth.login", ctx.Wrap(authController.Login))
	api.Post("/refresh", "auth.refresh", ctx.Wrap(authController.Refresh))

	// ─── Authenticated ───────────────────────────────────────────────────
	protected := api.Group("", middleware.Auth)

	protected.Get("/profile", "auth.profile", ctx.Wrap(authController.Profile))

	protected.Get("/products", "products.index", ctx.Wrap(productController.Index))
	protected.Get("/products/active", "products.active", ctx.Wrap(productController.Active))
	protected.Get("/products/{id}", "products.show", ctx.Wrap(productController.Show))
	protected.Post("/products", "products.store", ctx.Wrap(productController.Store))
	protected.Put("/products/{id}", "products.update", ctx.Wrap(productController.Update))
	protected.Delete("/products/{id}", "products.destroy", ctx.Wrap(productController.Destroy))
	protected.Post("/products/{id}/image", "products.image", ctx.Wrap(productController.UploadImage))
	protected.Post("/products/{id}/variations", "products.variations.store", ctx.Wrap(productController.StoreVariation))
	protected.Delete("/products/{id}/variations/{variationId}", "products.variations.destroy", ctx.Wrap(productController.DestroyVariation))
	protected.Post("/products/{id}/optionals", "products.optionals.store", ctx.Wrap(productController.StoreOptional))
	protected.Delete("/products/{id}/optionals/{optionalId}", "products.optionals.destroy", ctx.Wrap(productController.DestroyOptional))

	protected.Get("/orders", "orders.index", ctx.Wrap(orderController.Index))
	protected.Get("/orders/feed", "orders.feed", ctx.Wrap(orderController.Feed))
	protected.Get("/orders/{id}", "orders.show", ctx.Wrap(orderController.Show))
	protected.Post("/orders", "orders.store", ctx.Wrap(orderController.Store))
	protected.Put("/orders/{id}/status", "orders.status", ctx.Wrap(orderController.UpdateStatus))
	protected.Put("/orders/status", "orders.status.bulk", ctx.Wrap(orderController.BulkUpdateStatus))

	protected.Get("/store-hours", "store_hours.index", ctx.Wrap(storeHourController.Index))
	protected.Get("/store-hours/{id}", "store_hours.show", ctx.Wrap(storeHourController.Show))
	protected.Post("/store-hours", "store_hours.store", ctx.Wrap(storeHourController.Store))
	protected.Put("/store-hours/{id}", "store_hours.update", ctx.Wrap(storeHourController.Update))
	protected.Delete("/store-hours/{id}", "store_hours.destroy", ctx.Wrap(storeHourController.Destroy))

	protected.Get("/service-types", "service_types.index", ctx.Wrap(serviceTypeController.Index))
	protected.Get("/service-types/{id}", "service_types.show", ctx.Wrap(serviceTypeController.Show))

	protected.Get("/plans", "plans.index", ctx.Wrap(planController.Index))
	protected.Get("/plans/{id}", "plans.show", ctx.Wrap(planController.Show))

	protected.Get("/events", "events.index", ctx.Wrap(eventController.Index))
	protected.Get("/events/{id}", "events.show", ctx.Wrap(eventController.Show))

	protected.Post("/dashboard/graphql", "dashboard.graphql", appgraphql.Handler())

	// ─── Admin ───────────────────────────────────────────────────────────
	admin := protected.Group("", middleware.RequireRole(models.RoleAdmin))

	admin.Get("/users", "users.index", ctx.Wrap(authController.Users))

	admin.Post("/service-types", "service_types.store", ctx.Wrap(serviceTypeController.Store))
	admin.Put("/service-types/{id}", "service_types.update", ctx.Wrap(serviceTypeController.Update))
	admin.Delete("/service-types/{id}", "service_types.destroy", ctx.Wrap(serviceTypeController.Destroy))

	admin.Post("/plans", "plans.store", ctx.Wrap(planController.Store))
	admin.Put("/plans/{id}", "plans.update", ctx.Wrap(planController.Update))
	admin.Delete("/plans/{id}", "plans.destroy", ctx.Wrap(planController.Destroy))

	admin.Post("/events", "events.store", ctx.Wrap(eventController.Store))
	admin.Put("/events/{id}", "events.update", ctx.Wrap(eventController.Update))
	admin.Delete("/events/{id}", "events.destroy", ctx.Wrap(eventController.Destroy))
}
