// Package models defines the client-side data model: document records,
// media types, and the credentials handed to the auth gateway.
package models

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

// MediaType is the enumerated document type shown to the user. It is derived
// from the file extension on selection and echoed back by the backend.
type MediaType string

const (
	MediaTypePDF  MediaType = "PDF"
	MediaTypeDOC  MediaType = "DOC"
	MediaTypeDOCX MediaType = "DOCX"
	MediaTypeTXT  MediaType = "TXT"
	MediaTypeJPG  MediaType = "JPG"
	MediaTypePNG  MediaType = "PNG"
)

// mediaTypesByExt maps accepted lowercase extensions (without the dot) to
// their media type. Extensions outside this set are rejected on selection.
var mediaTypesByExt = map[string]MediaType{
	"pdf":  MediaTypePDF,
	"doc":  MediaTypeDOC,
	"docx": MediaTypeDOCX,
	"txt":  MediaTypeTXT,
	"jpg":  MediaTypeJPG,
	"png":  MediaTypePNG,
}

// MediaTypeForPath derives the media type from the file name's extension.
// The second return value reports whether the extension is accepted.
func MediaTypeForPath(path string) (MediaType, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	mt, ok := mediaTypesByExt[ext]
	return mt, ok
}

// AcceptedExtensions lists the accepted file extensions, for user messages.
func AcceptedExtensions() []string {
	return []string{"pdf", "doc", "docx", "txt", "jpg", "png"}
}

// DocumentRecord is one document owned by the current user. Records are
// created only from a successful upload acknowledgement (or the initial bulk
// list); ID is backend-assigned and never changes.
type DocumentRecord struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	MediaType  MediaType `json:"type"`
	SizeBytes  int64     `json:"size_bytes"`
	CreatedAt  time.Time `json:"created_at"`
	UploadedBy string    `json:"uploaded_by"`
}

// Validate checks the backend descriptor for the fields the client relies
// on. A descriptor failing this check is treated as a malformed response.
func (r DocumentRecord) Validate() error {
	if r.ID == "" {
		return errors.New("missing document id")
	}
	if r.Name == "" {
		return errors.New("missing document name")
	}
	return nil
}

// SelectedFile describes the local file of the active upload attempt.
type SelectedFile struct {
	Path        string
	Name        string
	SizeBytes   int64
	MediaType   MediaType
	ContentType string // sniffed MIME, informational
}

// Credentials carries sign-up/sign-in input. It is handed to the auth
// gateway and discarded once the request resolves; nothing persists it.
type Credentials struct {
	DisplayName string
	Email       string
	Password    string
}
