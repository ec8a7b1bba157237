package model

const (
	UploadKindImage    = "image"
	UploadKindDocument = "document"
)

// Upload is a file attached to an application field and stored in object
// storage. URL is what ends up in the submitted payload.
type Upload struct {
	Key          string
	FieldID      string
	OriginalName string
	MimeType     string
	Size         int64
	URL          string
}
