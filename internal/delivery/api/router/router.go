// Package router wires handlers to their HTTP routes.
package router

import (
	"time"

	"whatsorder/config"
	"whatsorder/internal/delivery/api/middleware"
	"whatsorder/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const rateLimiterExpiry = 3 * time.Minute

type RouterParams struct {
	fx.In

	BusinessHandler   *handler.BusinessHandler
	CategoryHandler   *handler.CategoryHandler
	ProductHandler    *handler.ProductHandler
	ServiceHandler    *handler.ServiceHandler
	OrderHandler      *handler.OrderHandler
	ProfileHandler    *handler.ProfileHandler
	UploadHandler     *handler.UploadHandler
	StorefrontHandler *handler.StorefrontHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Config            *config.Config
}

type router struct {
	business   *handler.BusinessHandler
	category   *handler.CategoryHandler
	product    *handler.ProductHandler
	service    *handler.ServiceHandler
	order      *handler.OrderHandler
	profile    *handler.ProfileHandler
	upload     *handler.UploadHandler
	storefront *handler.StorefrontHandler
	auth       *middleware.AuthMiddleware
	config     *config.Config
}

func NewRouter(params RouterParams) *router {
	return &router{
		business:   params.BusinessHandler,
		category:   params.CategoryHandler,
		product:    params.ProductHandler,
		service:    params.ServiceHandler,
		order:      params.OrderHandler,
		profile:    params.ProfileHandler,
		upload:     params.UploadHandler,
		storefront: params.StorefrontHandler,
		auth:       params.AuthMiddleware,
		config:     params.Config,
	}
}

// RegisterRoutes mounts every API route. Authentication is attached per route
// because owner and public routes share the /api/businesses prefix.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authed := r.auth.Authenticate
	public := r.publicWriteLimiter()

	api := e.Group("/api")

	// "me" is a reserved slug, so the static route always wins over :slug.
	api.POST("/businesses", r.business.CreateBusiness, authed)
	api.GET("/businesses/me", r.business.GetOwnBusiness, authed)
	api.PUT("/businesses", r.business.UpdateOwnBusiness, authed)

	api.GET("/businesses/:slug", r.storefront.GetStorefront)
	api.GET("/businesses/:slug/qr", r.storefront.GetStorefrontQR)
	api.POST("/businesses/:slug/checkout", r.storefront.Checkout, public...)

	api.GET("/categories", r.category.ListCategories, authed)
	api.POST("/categories", r.category.CreateCategory, authed)
	api.DELETE("/categories/:id", r.category.DeleteCategory, authed)

	api.GET("/products", r.product.ListProducts, authed)
	api.POST("/products", r.product.CreateProduct, authed)
	api.PUT("/products/:id", r.product.UpdateProduct, authed)
	api.DELETE("/products/:id", r.product.DeleteProduct, authed)

	api.GET("/services", r.service.ListServices, authed)
	api.POST("/services", r.service.CreateService, authed)
	api.PUT("/services/:id", r.service.UpdateService, authed)
	api.DELETE("/services/:id", r.service.DeleteService, authed)

	api.POST("/orders", r.order.LogOrder, public...)
	api.GET("/orders/me", r.order.ListOwnOrders, authed)

	api.GET("/profile", r.profile.GetProfile, authed)
	api.POST("/onboarding/complete", r.profile.CompleteOnboarding, authed)

	api.POST("/uploads", r.upload.UploadImage, authed)
}

// publicWriteLimiter throttles unauthenticated writes per client IP when configured.
func (r *router) publicWriteLimiter() []echo.MiddlewareFunc {
	orders := r.config.Orders
	if orders == nil || orders.RateLimit <= 0 {
		return nil
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(orders.RateLimit),
		Burst:     orders.Burst,
		ExpiresIn: rateLimiterExpiry,
	})

	return []echo.MiddlewareFunc{echomiddleware.RateLimiter(store)}
}
