package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dkraev/inkpress/internal/common"
	"github.com/dkraev/inkpress/internal/models"
)

func TestCreateSession_StoresTokenForLaterRequests(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/sessions", func(w http.ResponseWriter, r *http.Request) {
		var in models.CreateSessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, "dana@example.com", in.Email)
		json.NewEncoder(w).Encode(models.Session{
			Token: "tok-123",
			User:  models.User{ID: "u1", Name: "Dana"},
		})
	})
	mux.HandleFunc("GET /v1/account", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.User{ID: "u1"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := NewHTTPStore(srv.URL, time.Second)

	session, err := store.CreateSession(context.Background(), "dana@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok-123", session.Token)
	require.Equal(t, "Dana", session.User.Name)

	_, err = store.CurrentAccount(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)
}

func TestDeleteSession_DropsTokenEvenOnFailure(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /v1/sessions/current", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse{Error: "internal error"})
	})
	mux.HandleFunc("GET /v1/account", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.User{ID: "u1"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := NewHTTPStore(srv.URL, time.Second)
	store.setToken("tok-123")

	require.Error(t, store.DeleteSession(context.Background()))

	_, err := store.CurrentAccount(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotAuth, "token must not survive a logout")
}

func TestStatusErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, common.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, common.ErrForbidden},
		{"not found", http.StatusNotFound, common.ErrNotFound},
		{"conflict", http.StatusConflict, common.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: "nope"})
			}))
			defer srv.Close()

			store := NewHTTPStore(srv.URL, time.Second)
			_, err := store.GetDocument(context.Background(), "posts", "some-id")
			require.ErrorIs(t, err, tt.want)
			require.Contains(t, err.Error(), "nope", "server message kept as context")
		})
	}
}

func TestNetworkErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	store := NewHTTPStore(srv.URL, time.Second)
	_, err := store.ListDocuments(context.Background(), "posts")
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestCreateDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/collections/posts/documents/my-slug", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in models.DocumentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, "My Post", in.Fields["title"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Document{
			Collection: "posts",
			ID:         "my-slug",
			OwnerID:    "u1",
			Fields:     in.Fields,
		})
	}))
	defer srv.Close()

	store := NewHTTPStore(srv.URL, time.Second)
	doc, err := store.CreateDocument(context.Background(), "posts", "my-slug", map[string]any{"title": "My Post"})
	require.NoError(t, err)
	require.Equal(t, "my-slug", doc.ID)
	require.Equal(t, "u1", doc.OwnerID)
}

func TestListDocuments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/collections/posts/documents", r.URL.Path)
		json.NewEncoder(w).Encode(models.DocumentList{Documents: []models.Document{
			{ID: "a"}, {ID: "b"},
		}})
	}))
	defer srv.Close()

	store := NewHTTPStore(srv.URL, time.Second)
	docs, err := store.ListDocuments(context.Background(), "posts")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, "a", docs[0].ID)
}

func TestCreateFile_SendsRawBody(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/v1/buckets/post-images/files/file-1", r.URL.Path)
		require.Equal(t, "image/png", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Equal(t, payload, body)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.FileRef{Bucket: "post-images", ID: "file-1", Size: int64(len(body))})
	}))
	defer srv.Close()

	store := NewHTTPStore(srv.URL, time.Second)
	ref, err := store.CreateFile(context.Background(), "post-images", "file-1", payload, "image/png")
	require.NoError(t, err)
	require.Equal(t, "file-1", ref.ID)
	require.Equal(t, int64(4), ref.Size)
}

func TestFilePreviewURL(t *testing.T) {
	store := NewHTTPStore("http://store.test/", time.Second)
	require.Equal(t,
		"http://store.test/v1/buckets/post-images/files/file-1/preview",
		store.FilePreviewURL("post-images", "file-1"))
}
