package http

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Prober reports whether the store answers a trivial read.
type Prober interface {
	Probe(ctx context.Context) error
}

type Handler struct{ store Prober }

func NewHandler(store Prober) *Handler { return &Handler{store: store} }

func (h *Handler) Health(c echo.Context) error {
	if err := h.store.Probe(c.Request().Context()); err != nil {
		log.Printf("health: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
