package content_dto

import json "github.com/goccy/go-json"

type ParamContentKey struct {
	Key string `params:"key" validate:"required,slug,max=120"`
}

// UpsertCommonContentRequest: der Key kommt aus dem Pfad. Content ist das
// rohe Block-JSON, wie es das Frontend rendert.
type UpsertCommonContentRequest struct {
	Content json.RawMessage `json:"content" validate:"required"`
}

// UpsertCustomCodeRequest: Admin-only, da der Code ungefiltert in die Seiten
// injiziert wird.
type UpsertCustomCodeRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Code     string `json:"code" validate:"required"`
	Location string `json:"location" validate:"required,oneof=head body_start body_end"`
	IsActive bool   `json:"is_active"`
}

type ListContentQuery struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}
