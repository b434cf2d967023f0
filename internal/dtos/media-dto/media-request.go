package media_dto

type ParamMediaID struct {
	ID string `params:"id" validate:"required,uuid"`
}

// UpdateMediaRequest ändert nur Metadaten; das Objekt im Bucket bleibt
// unangetastet.
type UpdateMediaRequest struct {
	FileName *string `json:"file_name,omitempty" validate:"omitempty,min=1,max=200"`
	AltText  *string `json:"alt_text,omitempty" validate:"omitempty,max=300"`
}

type ListMediaQuery struct {
	Page  int    `query:"page" validate:"omitempty,min=1"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Mime  string `query:"mime" validate:"omitempty,max=100"`
}
