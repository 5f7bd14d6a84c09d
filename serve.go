package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"notecal/config"
	"notecal/render"
)

// calendarHandler builds a fresh grid from now() for every request.
type calendarHandler struct {
	cfg *config.Config
	now func() time.Time
}

func routes(h *calendarHandler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.pageGet)
	mux.HandleFunc("GET /calendar.txt", h.textGet)
	mux.HandleFunc("GET /favicon.png", h.faviconGet)
	return mux
}

func (h *calendarHandler) pageGet(w http.ResponseWriter, r *http.Request) {
	buf := new(bytes.Buffer)
	if err := renderCalendar(buf, "html", h.now(), h.cfg, render.PlainTheme()); err != nil {
		serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	writeBody(w, r, buf)
}

func (h *calendarHandler) textGet(w http.ResponseWriter, r *http.Request) {
	buf := new(bytes.Buffer)
	if err := renderCalendar(buf, "text", h.now(), h.cfg, render.PlainTheme()); err != nil {
		serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	writeBody(w, r, buf)
}

func (h *calendarHandler) faviconGet(w http.ResponseWriter, r *http.Request) {
	now := h.now().UTC()
	weekday := (int(now.Weekday()) + 6) % 7

	buf := new(bytes.Buffer)
	if err := render.IconPNG(buf, 64, weekday); err != nil {
		serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	writeBody(w, r, buf)
}

// writeBody sends a fully rendered body. A failed write means the client
// went away, so it is only logged.
func writeBody(w http.ResponseWriter, r *http.Request, buf *bytes.Buffer) {
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("Failed to write response.", "path", r.URL.Path, "err", err)
	}
}

func serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("Failed to render calendar.", "path", r.URL.Path, "err", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func serve(ctx context.Context, addr string, cfg *config.Config) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: routes(&calendarHandler{cfg: cfg, now: time.Now}),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Serving calendar.", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
