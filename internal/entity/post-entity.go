package entity

import "time"

// PostEntity repräsentiert einen Blog-Beitrag. CategoryName und Tags werden
// beim Lesen dazugejoint.
type PostEntity struct {
	ID           string      `json:"id"`
	Slug         string      `json:"slug"`
	Title        string      `json:"title"`
	Excerpt      *string     `json:"excerpt,omitempty"`
	Content      string      `json:"content"`
	CoverImage   *string     `json:"cover_image,omitempty"`
	CategoryID   *string     `json:"category_id,omitempty"`
	CategoryName *string     `json:"category_name,omitempty"`
	AuthorID     *string     `json:"author_id,omitempty"` // NULL, wenn das Konto gelöscht wurde
	Published    bool        `json:"published"`
	PublishedAt  *time.Time  `json:"published_at,omitempty"`
	Tags         []TagEntity `json:"tags,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type PostListFilter struct {
	PublishedOnly bool
	CategorySlug  *string
	TagSlug       *string
	AuthorID      *string
	Search        *string
}
