package router

import (
	"github.com/pogojump/pogojump-api/internal/container"
	handlers "github.com/pogojump/pogojump-api/internal/interface/http"
	"github.com/pogojump/pogojump-api/internal/router/modules"
)

// InitModules builds every feature module from the container and registers
// it with the router registry. Call once during startup.
func InitModules(r *Registry, c *container.Container) {
	jwt := c.JWT
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(c.Auth), jwt))
	r.Add(modules.NewProductModule(handlers.NewProductHandler(c.Products), jwt))
	r.Add(modules.NewReviewModule(handlers.NewReviewHandler(c.Reviews), jwt))
	r.Add(modules.NewOrderModule(handlers.NewOrderHandler(c.Orders), jwt))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(c.Users), jwt))
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(c.Store)))

	if c.Registry != nil {
		r.AddRoot(modules.NewMetricsModule(c.Registry))
	}
}
