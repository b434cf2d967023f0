package entity

import (
	"time"

	json "github.com/goccy/go-json"
)

// CommonContentEntity ist ein wiederverwendbarer Inhaltsblock (Header,
// Footer, Navigation, ...). Natürlicher Schlüssel ist der Key.
type CommonContentEntity struct {
	ID        string          `json:"id"`
	Key       string          `json:"key"`
	Content   json.RawMessage `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CustomCodeEntity ist ein injizierbares Markup/Script-Snippet. Schreiben ist
// Admin-Sache; anonym sichtbar sind nur aktive Snippets.
type CustomCodeEntity struct {
	ID        string       `json:"id"`
	Key       string       `json:"key"`
	Name      string       `json:"name"`
	Code      string       `json:"code"`
	Location  CodeLocation `json:"location"`
	IsActive  bool         `json:"is_active"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type CodeLocation string

const (
	LocationHead      CodeLocation = "head"
	LocationBodyStart CodeLocation = "body_start"
	LocationBodyEnd   CodeLocation = "body_end"
)

func (l CodeLocation) IsValid() bool {
	switch l {
	case LocationHead, LocationBodyStart, LocationBodyEnd:
		return true
	}

	return false
}
