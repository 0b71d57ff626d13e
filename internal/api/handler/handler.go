// Package handler provides HTTP handlers for the export API. Handlers
// read export files and checkpoint markers straight off the filesystem;
// the Postgres mirror is optional and only backs the db health check.
package handler

import (
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/courtline/courtline-data/internal/api/respond"
	"github.com/courtline/courtline-data/internal/config"
	"github.com/courtline/courtline-data/internal/csvio"
	"github.com/courtline/courtline-data/internal/db"
)

const markerPrefix = "last_game_id_"

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	pool *db.Pool // nil when no database is configured
	cfg  *config.Config
}

// New creates a Handler with shared dependencies.
func New(pool *db.Pool, cfg *config.Config) *Handler {
	return &Handler{pool: pool, cfg: cfg}
}

// Root serves API info at /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Courtline Data API",
		"version": "1.0.0",
		"status":  "running",
		"endpoints": []string{
			"/health",
			"/health/db",
			"/api/v1/exports",
			"/api/v1/exports/progress",
			"/api/v1/exports/files/{path}",
		},
	})
}

// HealthCheck returns basic health status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies mirror database connectivity.
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC().Format(time.RFC3339)
	if h.pool == nil {
		respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
			"status":    "healthy",
			"database":  "not_configured",
			"timestamp": now,
		})
		return
	}
	if err := h.pool.HealthCheck(r.Context()); err != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": now,
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": now,
	})
}

type exportFile struct {
	Path       string    `json:"path"`
	SizeBytes  int64     `json:"size_bytes"`
	ModifiedAt time.Time `json:"modified_at"`
}

// ListExports lists every CSV under the export directory.
func (h *Handler) ListExports(w http.ResponseWriter, r *http.Request) {
	files := []exportFile{}
	err := filepath.WalkDir(h.cfg.OutDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(d.Name(), ".csv") {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(h.cfg.OutDir, path)
		if err != nil {
			return err
		}
		files = append(files, exportFile{
			Path:       filepath.ToSlash(rel),
			SizeBytes:  info.Size(),
			ModifiedAt: info.ModTime().UTC(),
		})
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		respond.WriteError(w, http.StatusInternalServerError, "LIST_FAILED", "Could not list export files")
		return
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"count": len(files),
		"files": files,
	})
}

type exportProgress struct {
	Export     string    `json:"export"`
	LastGameID string    `json:"last_game_id"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ExportProgress reports the checkpoint marker of every run that has one.
func (h *Handler) ExportProgress(w http.ResponseWriter, r *http.Request) {
	dir := filepath.Join(h.cfg.OutDir, "checkpoints")
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		respond.WriteError(w, http.StatusInternalServerError, "PROGRESS_FAILED", "Could not read checkpoint markers")
		return
	}

	progress := []exportProgress{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, markerPrefix) || !strings.HasSuffix(name, ".txt") {
			continue
		}
		gameID, err := csvio.ReadMarker(filepath.Join(dir, name))
		if err != nil || gameID == "" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		progress = append(progress, exportProgress{
			Export:     strings.TrimSuffix(strings.TrimPrefix(name, markerPrefix), ".txt"),
			LastGameID: gameID,
			UpdatedAt:  info.ModTime().UTC(),
		})
	}
	sort.Slice(progress, func(i, j int) bool { return progress[i].Export < progress[j].Export })
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"count":   len(progress),
		"exports": progress,
	})
}

// GetExportFile serves one CSV from the export directory.
func (h *Handler) GetExportFile(w http.ResponseWriter, r *http.Request) {
	rel := chi.URLParam(r, "*")
	if rel == "" || !strings.HasSuffix(rel, ".csv") {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Export file not found")
		return
	}

	// Reject anything that escapes the export directory.
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || filepath.IsAbs(clean) {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Export file not found")
		return
	}

	path := filepath.Join(h.cfg.OutDir, clean)
	if !csvio.Exists(path) {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Export file not found")
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	http.ServeFile(w, r, path)
}
