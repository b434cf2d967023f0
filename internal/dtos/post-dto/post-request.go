package post_dto

type ParamPostSlug struct {
	Slug string `params:"slug" validate:"required,slug,max=160"`
}

// CreatePostRequest: POST /api/blog. Fehlt der Slug, wird er aus dem Titel
// abgeleitet.
type CreatePostRequest struct {
	Title      string   `json:"title" validate:"required,min=1,max=200"`
	Slug       string   `json:"slug,omitempty" validate:"omitempty,slug,max=160"`
	Excerpt    *string  `json:"excerpt,omitempty" validate:"omitempty,max=300"`
	Content    string   `json:"content" validate:"required"`
	CoverImage *string  `json:"cover_image,omitempty" validate:"omitempty,url"`
	CategoryID *string  `json:"category_id,omitempty" validate:"omitempty,uuid"`
	Tags       []string `json:"tags,omitempty" validate:"omitempty,max=10,dive,slug"`
	Published  bool     `json:"published"`
}

// UpsertPostRequest: PUT /api/blog/:slug, der Slug kommt aus dem Pfad.
type UpsertPostRequest struct {
	Title      string   `json:"title" validate:"required,min=1,max=200"`
	Excerpt    *string  `json:"excerpt,omitempty" validate:"omitempty,max=300"`
	Content    string   `json:"content" validate:"required"`
	CoverImage *string  `json:"cover_image,omitempty" validate:"omitempty,url"`
	CategoryID *string  `json:"category_id,omitempty" validate:"omitempty,uuid"`
	Tags       []string `json:"tags,omitempty" validate:"omitempty,max=10,dive,slug"`
	Published  bool     `json:"published"`
}

type ListPostsQuery struct {
	Page     int    `query:"page" validate:"omitempty,min=1"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Category string `query:"category" validate:"omitempty,slug,max=120"`
	Tag      string `query:"tag" validate:"omitempty,slug,max=120"`
	Author   string `query:"author" validate:"omitempty,uuid"`
	Search   string `query:"search" validate:"omitempty,max=100"`
}
