package cli

import (
	"context"
	"fmt"

	"github.com/docuscope/docuscope-cli/internal/client/api"
)

// Delete removes a document after explicit confirmation. The backend is
// asked first; the local list only changes once the delete is acknowledged.
func (a *App) Delete(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in first.")
		return nil
	}

	var err error
	if id == "" {
		if id, err = GetSimpleText(a.reader, "Document id to delete", a.out); err != nil {
			return err
		}
	}
	if id == "" {
		fmt.Fprintln(a.out, "Nothing to delete.")
		return nil
	}

	ok, err := confirmFn(fmt.Sprintf("Delete document %s?", id))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	removed, err := a.docs.Delete(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, api.ErrorDetail(err, "Unable to delete the document. Please try again."))
		return err
	}
	if !removed {
		fmt.Fprintf(a.out, "No document with id %s\n", id)
		return nil
	}

	fmt.Fprintln(a.out, "Deleted.")
	return nil
}
