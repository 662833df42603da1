package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/docuscope/docuscope-cli/internal/client/models"
	"github.com/stretchr/testify/require"
)

func sampleDocs() []models.DocumentRecord {
	return []models.DocumentRecord{
		{
			ID:         "doc-2",
			Name:       "Notes.txt",
			MediaType:  models.MediaTypeTXT,
			SizeBytes:  512,
			CreatedAt:  time.Now().Add(-time.Minute),
			UploadedBy: "Jane Doe",
		},
		{
			ID:         "doc-1",
			Name:       "Annual Report.pdf",
			MediaType:  models.MediaTypePDF,
			SizeBytes:  2048,
			CreatedAt:  time.Now().Add(-time.Hour),
			UploadedBy: "Jane Doe",
		},
	}
}

func TestRenderDocuments(t *testing.T) {
	out := renderDocuments(sampleDocs(), "")

	require.Contains(t, out, "Notes.txt")
	require.Contains(t, out, "Annual Report.pdf")
	require.Contains(t, out, "by Jane Doe")
	require.Contains(t, out, "id=doc-1")
	// most recent record renders first
	require.Less(t, strings.Index(out, "Notes.txt"), strings.Index(out, "Annual Report.pdf"))
}

func TestRenderDocuments_MatchFooter(t *testing.T) {
	out := renderDocuments(sampleDocs()[:1], "notes")
	require.Contains(t, out, `1 document(s) matching "notes"`)
}

func TestRenderDocuments_EmptyStates(t *testing.T) {
	out := renderDocuments(nil, "")
	require.Contains(t, out, "No documents yet.")

	out = renderDocuments(nil, "budget")
	require.Contains(t, out, `No documents match "budget".`)
}
