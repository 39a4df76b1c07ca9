package model

// Document is a file attached to a filing. FileKey identifies the stored
// content: either an object-store key or a Document Record Service id.
type Document struct {
	ID         int64  `json:"id"`
	Type       string `json:"type"`
	FileKey    string `json:"file_key"`
	FileName   string `json:"file_name,omitempty"`
	FilingID   *int64 `json:"filing_id,omitempty"`
	BusinessID *int64 `json:"business_id,omitempty"`
}
