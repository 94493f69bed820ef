// Package models defines the wire types exchanged between the Inkpress
// client and the remote store over HTTP.
package models

import "time"

// User is the public view of an account.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is returned on login: a bearer token plus the authenticated user.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Document is one record in a named collection. Fields is schemaless on the
// wire; the client maps it onto its domain types.
type Document struct {
	Collection string         `json:"collection"`
	ID         string         `json:"id"`
	OwnerID    string         `json:"ownerId"`
	Fields     map[string]any `json:"fields"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// FileRef identifies an uploaded file within a bucket.
type FileRef struct {
	Bucket    string    `json:"bucket"`
	ID        string    `json:"id"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateAccountRequest is the signup payload.
type CreateAccountRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateSessionRequest is the login payload.
type CreateSessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DocumentRequest carries document fields on create and update.
type DocumentRequest struct {
	Fields map[string]any `json:"fields"`
}

// DocumentList wraps a collection listing.
type DocumentList struct {
	Documents []Document `json:"documents"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
