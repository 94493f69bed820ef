// Package httpapi exposes the server's document, file and session services
// over HTTP+JSON.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dkraev/inkpress/internal/common"
	"github.com/dkraev/inkpress/internal/logging"
	"github.com/dkraev/inkpress/internal/models"
	"github.com/dkraev/inkpress/internal/server/services"
	serverm "github.com/dkraev/inkpress/internal/server/models"
)

type Handler struct {
	accounts  *services.AccountService
	documents *services.DocumentService
	files     *services.FileService
	logger    logging.Logger
}

func NewHandler(accounts *services.AccountService, documents *services.DocumentService, files *services.FileService, logger logging.Logger) *Handler {
	return &Handler{accounts: accounts, documents: documents, files: files, logger: logger}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the shared error taxonomy onto HTTP status codes. Unknown
// errors become opaque 500s; the detail stays in the server log.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, common.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, common.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, common.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrConflict):
		status = http.StatusConflict
	default:
		h.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, status, models.ErrorResponse{Error: err.Error()})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding body: %w", common.ErrBadRequest)
	}
	return nil
}

func userDTO(u *serverm.User) models.User {
	return models.User{ID: u.ID, Name: u.Name, Email: u.Email}
}

func documentDTO(d *serverm.Document) models.Document {
	return models.Document{
		Collection: d.Collection,
		ID:         d.ID,
		OwnerID:    d.OwnerID,
		Fields:     d.Fields,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func fileDTO(f *serverm.File) models.FileRef {
	return models.FileRef{Bucket: f.Bucket, ID: f.ID, Size: f.Size, CreatedAt: f.CreatedAt}
}
