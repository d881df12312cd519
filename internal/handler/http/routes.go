package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.welcome)

	// session lifecycle
	router.Get("/login", h.login)
	router.Get("/logoff", h.logoff)

	// routes that require an open session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/exibicaoUsuarioAtivo", h.activeUser)
		r.Post("/cadastroDispositivo", h.registerDevice)
	})

	// users
	router.Post("/cadastroUsuario", h.registerUser)
	router.Get("/exibicaoUsuarios", h.listUsers)
	router.Get("/exibicaoUsuario-{id}", h.getUser)
	router.Put("/edicaoUsuario", h.editUser)
	router.Delete("/exclusaoUsuario-{id}", h.removeUser)
	router.Get("/exibicaoDispositivosUsuario-{id}", h.listUserDevices)

	// devices
	router.Get("/exibicaoDispositivos", h.listDevices)
	router.Get("/exibicaoDispositivo-{id}", h.getDevice)
	router.Put("/edicaoDispositivo", h.editDevice)
	router.Delete("/exclusaoDispositivo-{id}", h.removeDevice)

	return router
}
