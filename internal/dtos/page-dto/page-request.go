package page_dto

import json "github.com/goccy/go-json"

type ParamPageSlug struct {
	Slug string `params:"slug" validate:"required,slug,max=120"`
}

// UpsertPageRequest: der Slug kommt aus dem Pfad, der Body trägt den Rest.
// PUT auf einen unbekannten Slug legt die Seite an.
type UpsertPageRequest struct {
	Title           string          `json:"title" validate:"required,min=1,max=200"`
	Content         json.RawMessage `json:"content,omitempty"`
	MetaTitle       *string         `json:"meta_title,omitempty" validate:"omitempty,max=70"`
	MetaDescription *string         `json:"meta_description,omitempty" validate:"omitempty,max=160"`
	Published       bool            `json:"published"`
}

type ListPagesQuery struct {
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Search string `query:"search" validate:"omitempty,max=100"`
}
