package taxonomy_dto

type ParamTaxonomySlug struct {
	Slug string `params:"slug" validate:"required,slug,max=120"`
}

type UpsertCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=80"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=300"`
}

type UpsertTagRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

type ListTaxonomyQuery struct {
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Search string `query:"search" validate:"omitempty,max=100"`
}
