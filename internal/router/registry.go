package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Registry collects modules and mounts them once. API modules live under the
// prefix and share its middleware; root modules sit on the bare engine.
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
	root        []Module
}

func NewRegistry(engine *gin.Engine, prefix string) *Registry {
	return &Registry{Engine: engine, API: engine.Group(prefix)}
}

// Use adds middleware that runs for API modules only.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// AddRoot registers mod outside the API prefix.
func (r *Registry) AddRoot(mod Module) {
	r.root = append(r.root, mod)
}

// RegisterAll mounts every module. Two modules with the same name is a wiring bug.
func (r *Registry) RegisterAll() {
	seen := make(map[string]bool, len(r.modules)+len(r.root))
	check := func(m Module) {
		if seen[m.Name()] {
			panic(fmt.Sprintf("router: module %q registered twice", m.Name()))
		}
		seen[m.Name()] = true
	}

	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		check(m)
		m.Register(r.API)
	}
	for _, m := range r.root {
		check(m)
		m.Register(&r.Engine.RouterGroup)
	}
}

// Names lists registered modules in mount order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.modules)+len(r.root))
	for _, m := range r.modules {
		out = append(out, m.Name())
	}
	for _, m := range r.root {
		out = append(out, m.Name())
	}
	return out
}
