package entity

import (
	"time"

	json "github.com/goccy/go-json"
)

// PageEntity repräsentiert eine statische Seite. Natürlicher Schlüssel ist
// der Slug; Schreiben ist ein Upsert darauf.
type PageEntity struct {
	ID              string          `json:"id"`
	Slug            string          `json:"slug"`
	Title           string          `json:"title"`
	Content         json.RawMessage `json:"content,omitempty"` // strukturierter Seiteninhalt (jsonb)
	MetaTitle       *string         `json:"meta_title,omitempty"`
	MetaDescription *string         `json:"meta_description,omitempty"`
	Published       bool            `json:"published"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// PageListFilter: PublishedOnly wird serverseitig gesetzt, sobald kein
// Principal am Request hängt.
type PageListFilter struct {
	PublishedOnly bool
	Search        *string
}
