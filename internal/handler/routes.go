package handler

import (
	"net/http"

	"github.com/dmarquezl/aurora-rrhh/internal/metrics"
	"github.com/dmarquezl/aurora-rrhh/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps bundles everything the route table needs.
type Deps struct {
	Auth         *service.AuthService
	Empleados    *service.EmpleadoService
	Estadisticas *service.EstadisticasService
	LoginLimiter *service.TokenBucket
	Metrics      *metrics.Metrics
	Registry     *prometheus.Registry
	CookieSecure bool
}

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, deps Deps) {
	authHandler := NewAuthHandler(deps.Auth, deps.CookieSecure)
	empleadoHandler := NewEmpleadoHandler(deps.Empleados, deps.Metrics)
	dashboardHandler := NewDashboardHandler(deps.Estadisticas)

	observe := func(h http.Handler) http.Handler {
		return ObserveHTTP(deps.Metrics, h)
	}
	protected := func(h http.HandlerFunc) http.Handler {
		return observe(RequireAuth(deps.Auth, h))
	}

	mux.Handle("GET /healthz", observe(http.HandlerFunc(HandleHealthz)))
	mux.Handle("GET /metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	mux.Handle("POST /api/auth/register", observe(http.HandlerFunc(authHandler.HandleRegister)))
	mux.Handle("POST /api/auth/login", observe(RateLimit(deps.LoginLimiter, http.HandlerFunc(authHandler.HandleLogin))))
	mux.Handle("POST /api/auth/logout", observe(http.HandlerFunc(authHandler.HandleLogout)))
	mux.Handle("GET /api/auth/me", protected(authHandler.HandleMe))

	mux.Handle("GET /api/empleados", protected(empleadoHandler.HandleList))
	mux.Handle("POST /api/empleados", protected(empleadoHandler.HandleCreate))
	mux.Handle("GET /api/empleados/{id}", protected(empleadoHandler.HandleGet))
	mux.Handle("PUT /api/empleados/{id}", protected(empleadoHandler.HandleUpdate))
	mux.Handle("DELETE /api/empleados/{id}", protected(empleadoHandler.HandleDelete))

	mux.Handle("GET /api/estadisticas", protected(dashboardHandler.HandleEstadisticas))
}
