package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tuskhq/gatehouse/internal/accounts/service"
	"github.com/tuskhq/gatehouse/internal/accounts/store"
	"github.com/tuskhq/gatehouse/pkg/httpx"
	"github.com/tuskhq/gatehouse/pkg/slogx"

	_ "github.com/tuskhq/gatehouse/api/accounts" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AccountService *service.AccountService
	AuthService    *service.AuthService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerSessions()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			Gatehouse Accounts API
//	@version		0.1.0
//	@description	Minimal credential-and-session service: registration, password login, opaque session tokens, logout and profile updates.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	SessionToken
//	@in							header
//	@name						Authorization
//	@description				Opaque session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	registerHandler := &RegisterHandler{Accounts: r.AccountService}
	r.Mux.Handle("POST /v1/accounts", registerHandler)

	meHandler := &MeHandler{
		Accounts: r.AccountService,
		Auth:     r.AuthService,
	}
	r.Mux.Handle("GET /v1/me", http.HandlerFunc(meHandler.HandleGet))
	r.Mux.Handle("PATCH /v1/me", http.HandlerFunc(meHandler.HandlePatch))
}

func (r *Router) registerSessions() {
	h := &SessionsHandler{Auth: r.AuthService}
	r.Mux.Handle("POST /v1/sessions", http.HandlerFunc(h.HandleLogin))
	r.Mux.Handle("DELETE /v1/sessions", http.HandlerFunc(h.HandleLogout))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
