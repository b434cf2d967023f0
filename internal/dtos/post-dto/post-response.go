package post_dto

import (
	"time"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
)

type PostResponse struct {
	ID           string             `json:"id"`
	Slug         string             `json:"slug"`
	Title        string             `json:"title"`
	Excerpt      *string            `json:"excerpt,omitempty"`
	Content      string             `json:"content,omitempty"`
	CoverImage   *string            `json:"cover_image,omitempty"`
	CategoryID   *string            `json:"category_id,omitempty"`
	CategoryName *string            `json:"category_name,omitempty"`
	AuthorID     *string            `json:"author_id,omitempty"`
	Published    bool               `json:"published"`
	PublishedAt  *time.Time         `json:"published_at,omitempty"`
	Tags         []entity.TagEntity `json:"tags,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
