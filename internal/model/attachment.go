package model

// Storage backend kinds. Every attachment is tagged with the backend that
// stored it so deletion can be routed without guessing from the id shape.
const (
	StorageLocal  = "local"
	StorageRemote = "remote"
)

// Attachment is one stored file referenced by a day record.
type Attachment struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"` // size of the stored (possibly compressed) payload
	Storage      string `json:"storage,omitempty"`
}
