package httpapi

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dkraev/inkpress/internal/models"
)

// maxUploadSize bounds featured-image uploads.
const maxUploadSize = 16 << 20

// Routes assembles the public API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/accounts", h.createAccount)
		r.Post("/sessions", h.createSession)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)

			r.Delete("/sessions/current", h.deleteSession)
			r.Get("/account", h.getAccount)

			r.Route("/collections/{collection}/documents", func(r chi.Router) {
				r.Get("/", h.listDocuments)
				r.Post("/{id}", h.createDocument)
				r.Get("/{id}", h.getDocument)
				r.Patch("/{id}", h.updateDocument)
				r.Delete("/{id}", h.deleteDocument)
			})

			r.Route("/buckets/{bucket}/files/{id}", func(r chi.Router) {
				r.Put("/", h.uploadFile)
				r.Delete("/", h.deleteFile)
				r.Get("/preview", h.previewFile)
			})
		})
	})

	return r
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.accounts.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, userDTO(user))
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	token, user, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, models.Session{Token: token, User: userDTO(user)})
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.Logout(r.Context(), currentSessionID(r)); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userDTO(currentUser(r)))
}

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	var req models.DocumentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	doc, err := h.documents.Create(r.Context(), currentUser(r).ID,
		chi.URLParam(r, "collection"), chi.URLParam(r, "id"), req.Fields)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, documentDTO(doc))
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.documents.Get(r.Context(), chi.URLParam(r, "collection"), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, documentDTO(doc))
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documents.List(r.Context(), chi.URLParam(r, "collection"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	out := models.DocumentList{Documents: make([]models.Document, 0, len(docs))}
	for i := range docs {
		out.Documents = append(out.Documents, documentDTO(&docs[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	var req models.DocumentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	doc, err := h.documents.Update(r.Context(), currentUser(r).ID,
		chi.URLParam(r, "collection"), chi.URLParam(r, "id"), req.Fields)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, documentDTO(doc))
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	err := h.documents.Delete(r.Context(), currentUser(r).ID,
		chi.URLParam(r, "collection"), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	file, err := h.files.Upload(r.Context(), currentUser(r).ID,
		chi.URLParam(r, "bucket"), chi.URLParam(r, "id"), data, contentType)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, fileDTO(file))
}

func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
	err := h.files.Delete(r.Context(), currentUser(r).ID,
		chi.URLParam(r, "bucket"), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) previewFile(w http.ResponseWriter, r *http.Request) {
	url, err := h.files.PreviewURL(r.Context(), chi.URLParam(r, "bucket"), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}
