package entity

import "time"

// MediaEntity ist die Metadaten-Zeile zu einem Objekt im Bucket. Die Datei
// selbst liegt ausschließlich im Objektspeicher.
type MediaEntity struct {
	ID           string    `json:"id"`
	FileName     string    `json:"file_name"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	SizeBytes    int64     `json:"size_bytes"`
	ObjectKey    string    `json:"object_key"`
	URL          string    `json:"url"`
	AltText      *string   `json:"alt_text,omitempty"`
	UploadedBy   *string   `json:"uploaded_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
