package collection

import (
	"strings"

	"github.com/docuscope/docuscope-cli/internal/client/models"
)

// Project returns the ordered subsequence of records whose name or media
// type contains query, case-insensitively. An empty query is the identity
// projection. Pure and deterministic; callers recompute it on every store
// or query change rather than caching the result.
func Project(records []models.DocumentRecord, query string) []models.DocumentRecord {
	if query == "" {
		return records
	}

	needle := strings.ToLower(query)
	matched := make([]models.DocumentRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), needle) ||
			strings.Contains(strings.ToLower(string(r.MediaType)), needle) {
			matched = append(matched, r)
		}
	}
	return matched
}
