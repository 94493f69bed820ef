// Package models defines the server-side row types.
package models

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

type Document struct {
	Collection string
	ID         string
	OwnerID    string
	Fields     map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type File struct {
	Bucket      string
	ID          string
	OwnerID     string
	Size        int64
	ContentType string
	CreatedAt   time.Time
}
