package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/docuscope/docuscope-cli/internal/client/collection"
	"github.com/docuscope/docuscope-cli/internal/client/models"
	"github.com/dustin/go-humanize"
)

var (
	docNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	docMetaStyle  = lipgloss.NewStyle().Faint(true)
	docEmptyStyle = lipgloss.NewStyle().Italic(true).Faint(true)
)

// List prints the current projection of the document collection.
func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in first.")
		return nil
	}
	a.renderProjection()
	return nil
}

// Search updates the query and reprints the projection. An empty argument
// clears the filter.
func (a *App) Search(ctx context.Context, query string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in first.")
		return nil
	}
	a.query = query
	a.renderProjection()
	return nil
}

// renderProjection recomputes the visible subset from the store and the
// current query. It runs on every explicit list/search command and on every
// store change, so the view is never stale.
func (a *App) renderProjection() {
	if !a.isLoggedIn() {
		return
	}
	if a.loadingInitialList {
		fmt.Fprintln(a.out, "Loading your documents...")
		return
	}
	docs := collection.Project(a.store.All(), a.query)
	fmt.Fprint(a.out, renderDocuments(docs, a.query))
}

func renderDocuments(docs []models.DocumentRecord, query string) string {
	var b strings.Builder

	if len(docs) == 0 {
		if query != "" {
			b.WriteString(docEmptyStyle.Render(fmt.Sprintf("No documents match %q.", query)))
		} else {
			b.WriteString(docEmptyStyle.Render("No documents yet. Use 'upload' to add one."))
		}
		b.WriteString("\n")
		return b.String()
	}

	for _, d := range docs {
		meta := fmt.Sprintf("%s · %s · %s · by %s · id=%s",
			d.MediaType,
			humanize.Bytes(uint64(d.SizeBytes)),
			humanize.Time(d.CreatedAt),
			d.UploadedBy,
			d.ID,
		)
		b.WriteString(docNameStyle.Render(d.Name))
		b.WriteString("  ")
		b.WriteString(docMetaStyle.Render(meta))
		b.WriteString("\n")
	}

	if query != "" {
		b.WriteString(docMetaStyle.Render(fmt.Sprintf("%d document(s) matching %q", len(docs), query)))
		b.WriteString("\n")
	}
	return b.String()
}
