package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/docuscope/docuscope-cli/internal/client/api"
	"github.com/docuscope/docuscope-cli/internal/client/models"
	"github.com/dustin/go-humanize"
)

// runForm is a test seam for interactive forms.
var runForm = func(f *huh.Form) error { return f.Run() }

// promptCredentials collects sign-up/sign-in input. On a terminal it shows
// a huh form with a masked password field; otherwise it falls back to plain
// line prompts so the flow works over pipes.
func (a *App) promptCredentials(withName bool) (models.Credentials, error) {
	var creds models.Credentials
	if withName {
		creds.DisplayName = a.config.UploaderName
	}

	if isTerminal(int(os.Stdin.Fd())) {
		fields := make([]huh.Field, 0, 3)
		if withName {
			fields = append(fields, huh.NewInput().Title("Full name").Value(&creds.DisplayName))
		}
		fields = append(fields,
			huh.NewInput().Title("Email").Value(&creds.Email),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&creds.Password),
		)
		if err := runForm(huh.NewForm(huh.NewGroup(fields...))); err != nil {
			return creds, err
		}
		return creds, nil
	}

	var err error
	if withName {
		name, err := GetSimpleText(a.reader, "Full name", a.out)
		if err != nil {
			return creds, err
		}
		if name != "" {
			creds.DisplayName = name
		}
	}
	if creds.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return creds, err
	}
	if creds.Password, err = GetPassword(a.reader, a.out); err != nil {
		return creds, err
	}
	return creds, nil
}

// SignUp collects credentials and attempts to create an account. The
// backend's validation detail (e.g. "User already exists") is shown
// verbatim; otherwise a generic message is used. Credentials are not kept
// after the request resolves.
func (a *App) SignUp(ctx context.Context) error {
	creds, err := a.promptCredentials(true)
	if err != nil {
		return err
	}

	if err := a.auth.SignUp(ctx, creds); err != nil {
		fmt.Fprintln(a.out, api.ErrorDetail(err, "Unable to create account. Please try again."))
		return err
	}

	fmt.Fprintln(a.out, "Account created successfully!")
	a.bootstrapCollection(ctx)
	return nil
}

// SignIn collects credentials and authenticates. On success the document
// list is loaded for the first time.
func (a *App) SignIn(ctx context.Context) error {
	creds, err := a.promptCredentials(false)
	if err != nil {
		return err
	}

	if err := a.auth.SignIn(ctx, creds); err != nil {
		fmt.Fprintln(a.out, api.ErrorDetail(err, "Unable to sign in. Please try again."))
		return err
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", creds.Email)
	a.bootstrapCollection(ctx)
	return nil
}

// bootstrapCollection performs the initial bulk population of the store.
// Until it succeeds the collection stays empty; a failure clears the
// loading flag so the UI is never stuck on a spinner.
func (a *App) bootstrapCollection(ctx context.Context) {
	a.loadingInitialList = true
	if err := a.docs.Load(ctx); err != nil {
		a.loadingInitialList = false
		fmt.Fprintln(a.out, "Could not load your documents:", api.ErrorDetail(err, "server unavailable"))
		return
	}
	a.loadingInitialList = false
}

// ShowSession prints who is signed in and when the session token expires.
func (a *App) ShowSession(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}

	fmt.Fprintf(a.out, "Signed in as %s", a.session.Email())
	if name := a.session.DisplayName(); name != "" {
		fmt.Fprintf(a.out, " (%s)", name)
	}
	fmt.Fprintln(a.out)

	if exp, err := a.session.ExpiresAt(); err == nil {
		fmt.Fprintf(a.out, "Session expires %s\n", humanize.Time(exp))
	}
	return nil
}

// Logout ends the session and clears the session-scoped collection.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return nil
	}
	a.auth.SignOut()
	a.query = ""
	a.loadingInitialList = true
	a.store.Populate(nil)
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}
