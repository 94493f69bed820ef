package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dkraev/inkpress/internal/common"
	"github.com/dkraev/inkpress/internal/models"
)

// HTTPStore is the Store implementation backed by the Inkpress server's
// HTTP+JSON API. After a successful CreateSession it keeps the bearer token
// and attaches it to every subsequent request.
type HTTPStore struct {
	baseURL string
	hc      *http.Client

	mu    sync.Mutex
	token string
}

// NewHTTPStore returns a store bound to baseURL, e.g. "http://127.0.0.1:8080".
func NewHTTPStore(baseURL string, timeout time.Duration) *HTTPStore {
	return &HTTPStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

func (s *HTTPStore) setToken(t string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = t
}

func (s *HTTPStore) getToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *HTTPStore) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if t := s.getToken(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	resp, err := s.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (s *HTTPStore) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	return s.do(ctx, method, path, body, "application/json", out)
}

// statusError maps a non-2xx response to the shared error taxonomy, keeping
// the server's message as context.
func statusError(resp *http.Response) error {
	var er models.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&er)
	msg := er.Error
	if msg == "" {
		msg = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", msg, common.ErrUnauthorized)
	case http.StatusForbidden:
		return fmt.Errorf("%s: %w", msg, common.ErrForbidden)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, common.ErrNotFound)
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", msg, common.ErrConflict)
	default:
		return fmt.Errorf("remote store: %s", msg)
	}
}

func (s *HTTPStore) CreateAccount(ctx context.Context, name, email, password string) (*models.User, error) {
	in := models.CreateAccountRequest{Name: name, Email: email, Password: password}
	var user models.User
	if err := s.doJSON(ctx, http.MethodPost, "/v1/accounts", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *HTTPStore) CreateSession(ctx context.Context, email, password string) (*models.Session, error) {
	in := models.CreateSessionRequest{Email: email, Password: password}
	var session models.Session
	if err := s.doJSON(ctx, http.MethodPost, "/v1/sessions", in, &session); err != nil {
		return nil, err
	}
	s.setToken(session.Token)
	return &session, nil
}

// DeleteSession revokes the remote session. The locally held token is
// dropped regardless of the outcome so the client cannot keep acting on a
// session the user asked to end.
func (s *HTTPStore) DeleteSession(ctx context.Context) error {
	err := s.doJSON(ctx, http.MethodDelete, "/v1/sessions/current", nil, nil)
	s.setToken("")
	return err
}

func (s *HTTPStore) CurrentAccount(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.doJSON(ctx, http.MethodGet, "/v1/account", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func documentPath(collection, id string) string {
	return fmt.Sprintf("/v1/collections/%s/documents/%s", url.PathEscape(collection), url.PathEscape(id))
}

func (s *HTTPStore) CreateDocument(ctx context.Context, collection, id string, fields map[string]any) (*models.Document, error) {
	var doc models.Document
	if err := s.doJSON(ctx, http.MethodPost, documentPath(collection, id), models.DocumentRequest{Fields: fields}, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *HTTPStore) GetDocument(ctx context.Context, collection, id string) (*models.Document, error) {
	var doc models.Document
	if err := s.doJSON(ctx, http.MethodGet, documentPath(collection, id), nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *HTTPStore) ListDocuments(ctx context.Context, collection string) ([]models.Document, error) {
	var list models.DocumentList
	path := fmt.Sprintf("/v1/collections/%s/documents", url.PathEscape(collection))
	if err := s.doJSON(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return list.Documents, nil
}

func (s *HTTPStore) UpdateDocument(ctx context.Context, collection, id string, fields map[string]any) (*models.Document, error) {
	var doc models.Document
	if err := s.doJSON(ctx, http.MethodPatch, documentPath(collection, id), models.DocumentRequest{Fields: fields}, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *HTTPStore) DeleteDocument(ctx context.Context, collection, id string) error {
	return s.doJSON(ctx, http.MethodDelete, documentPath(collection, id), nil, nil)
}

func filePath(bucket, id string) string {
	return fmt.Sprintf("/v1/buckets/%s/files/%s", url.PathEscape(bucket), url.PathEscape(id))
}

func (s *HTTPStore) CreateFile(ctx context.Context, bucket, id string, data []byte, contentType string) (*models.FileRef, error) {
	var ref models.FileRef
	if err := s.do(ctx, http.MethodPut, filePath(bucket, id), bytes.NewReader(data), contentType, &ref); err != nil {
		return nil, err
	}
	return &ref, nil
}

// FilePreviewURL is a pure derivation; the server answers it with a redirect
// to short-lived object storage URL.
func (s *HTTPStore) FilePreviewURL(bucket, id string) string {
	return s.baseURL + filePath(bucket, id) + "/preview"
}

func (s *HTTPStore) DeleteFile(ctx context.Context, bucket, id string) error {
	return s.doJSON(ctx, http.MethodDelete, filePath(bucket, id), nil, nil)
}

func (s *HTTPStore) Close() error {
	s.hc.CloseIdleConnections()
	return nil
}
