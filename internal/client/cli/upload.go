package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
)

// confirmFn is a test seam for yes/no prompts.
var confirmFn = func(title string) (bool, error) {
	ok := false
	err := huh.Run(huh.NewConfirm().Title(title).Value(&ok))
	return ok, err
}

// Upload runs the upload surface: prompt for a path, validate the
// selection, transfer, and on failure offer a retry. The surface closes on
// success or when the user gives up; either way the attempt is discarded
// and the controller returns to Idle.
func (a *App) Upload(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in first.")
		return nil
	}

	a.uploadSurfaceOpen = true
	defer func() { a.uploadSurfaceOpen = false }()

	path, err := GetSimpleText(a.reader, "Path to the document", a.out)
	if err != nil {
		return err
	}

	if err := a.uploader.SelectFile(path); err != nil {
		// local validation failure, no network call was made
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	f := a.uploader.File()
	fmt.Fprintf(a.out, "Uploading %s (%s)...\n", f.Name, humanize.Bytes(uint64(f.SizeBytes)))

	for {
		err := a.uploader.Submit(ctx)
		if err == nil {
			if rec := a.uploader.Result(); rec != nil {
				fmt.Fprintf(a.out, "Uploaded %s (id=%s)\n", rec.Name, rec.ID)
			}
			a.uploader.Reset()
			return nil
		}

		fmt.Fprintln(a.out, a.uploader.ErrorDetail())

		retry, cerr := confirmFn("Retry the upload?")
		if cerr != nil || !retry {
			a.uploader.Reset()
			return err
		}

		// a failed attempt is never resubmitted directly; start a fresh
		// one with the same file
		a.uploader.Reset()
		if serr := a.uploader.SelectFile(path); serr != nil {
			fmt.Fprintln(a.out, serr.Error())
			return serr
		}
	}
}
