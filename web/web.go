// Package web serves the single page application shell. Every client-side
// route returns the same document; the client router takes over from there.
// There are no server-side guards on any of these paths.
package web

import (
	_ "embed"
	"net/http"
	"voyage/shared/constant"
	"voyage/shared/logger"

	"github.com/go-chi/chi/v5"
)

//go:embed index.html
var indexHTML []byte

// ClientRoutes mirrors the routes the frontend router knows about.
var ClientRoutes = []string{
	"/",
	"/log_in",
	"/register",
	"/reservations",
	"/user/reservations",
	"/offer/{id}",
	"/admin",
}

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (h *Handler) Router(router chi.Router) {
	for _, route := range ClientRoutes {
		router.Get(route, h.ServeShell)
	}
}

func (h *Handler) ServeShell(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(indexHTML); err != nil {
		logger.ErrorWithStack(err)
	}
}
