package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Yaakov-Belch/flyio-demo/internal/web/assets"
)

// Assets serves static files resolved against a fixed asset root.
type Assets struct {
	resolver *assets.Resolver
	logger   *slog.Logger
}

// NewAssets creates a static asset handler.
func NewAssets(resolver *assets.Resolver, logger *slog.Logger) *Assets {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assets{resolver: resolver, logger: logger}
}

// RegisterRoutes registers the static file route on the given mux.
func (h *Assets) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /static/{filepath...}", h.serve)
}

// serve resolves the requested path and streams the file back.
// Rejections never leak the resolved path: containment failures answer a
// bare 403, missing files a bare 404.
func (h *Assets) serve(w http.ResponseWriter, r *http.Request) {
	requested := r.PathValue("filepath")

	path, err := h.resolver.Resolve(requested)
	switch {
	case errors.Is(err, assets.ErrForbidden):
		h.logger.Warn("static request rejected", "path", requested)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("Forbidden"))
		return
	case errors.Is(err, assets.ErrNotFound):
		h.logger.Debug("static file not found", "path", requested)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Not Found"))
		return
	case err != nil:
		h.logger.Error("static resolution failed", "path", requested, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		// Raced with deletion between Resolve and Open.
		h.logger.Debug("static file vanished", "path", requested, "error", err)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Not Found"))
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		h.logger.Error("static file stat failed", "path", requested, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// ServeContent handles Content-Type detection, range requests and
	// conditional headers; the handle is released on return.
	http.ServeContent(w, r, filepath.Base(path), info.ModTime(), f)
}
