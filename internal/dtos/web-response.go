package dtos

// WebResponse repräsentiert die standardisierte Erfolgsantwort. Fehler laufen
// nie hier durch, sondern ausschließlich durch den globalen Error-Handler.
type WebResponse[T any] struct {
	Message    string          `json:"message,omitempty"`
	Data       T               `json:"data"`
	RequestID  string          `json:"request_id,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}
