package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) SignUp(ctx context.Context) error {
	f.record("signup")
	return nil
}

func (f *fakeExec) SignIn(ctx context.Context) error {
	f.record("signin")
	return nil
}

func (f *fakeExec) List(ctx context.Context) error {
	f.record("list")
	return nil
}

func (f *fakeExec) Search(ctx context.Context, query string) error {
	f.record("search:" + query)
	return nil
}

func (f *fakeExec) Upload(ctx context.Context) error {
	f.record("upload")
	return nil
}

func (f *fakeExec) Delete(ctx context.Context, id string) error {
	f.record("delete:" + id)
	return nil
}

func (f *fakeExec) ShowSession(ctx context.Context) error {
	f.record("session")
	return nil
}

func (f *fakeExec) Logout(ctx context.Context) error {
	f.record("logout")
	return nil
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runScript(t *testing.T, f *fakeExec, script string) []string {
	t.Helper()
	lines := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), f, func() string { return "guest" }, scanner)
	return *lines
}

func TestREPL_DispatchesCommands(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	runScript(t, f, "list\nsearch annual report\nupload\ndelete doc-1\nsession\nlogout\nexit\n")

	require.Equal(t, []string{
		"list",
		"search:annual report",
		"upload",
		"delete:doc-1",
		"session",
		"logout",
	}, f.calls)
}

func TestREPL_Aliases(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	runScript(t, f, "l\nregister\nlogin\nwhoami\nquit\n")

	require.Equal(t, []string{"list", "signup", "signin", "session"}, f.calls)
}

func TestREPL_SearchWithoutArgsClearsFilter(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	runScript(t, f, "search\nexit\n")

	require.Equal(t, []string{"search:"}, f.calls)
}

func TestREPL_DeleteWithoutID(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	runScript(t, f, "delete\nexit\n")

	require.Equal(t, []string{"delete:"}, f.calls)
}

func TestREPL_UnknownCommand(t *testing.T) {
	f := &fakeExec{}
	lines := runScript(t, f, "frobnicate\nexit\n")

	require.Empty(t, f.calls)
	var found bool
	for _, l := range lines {
		if strings.Contains(l, "Unknown command: frobnicate") {
			found = true
		}
	}
	require.True(t, found)
}

func TestREPL_HelpDependsOnSession(t *testing.T) {
	out := runScript(t, &fakeExec{}, "help\nexit\n")
	require.Contains(t, strings.Join(out, ""), "signup, signin, exit")

	out = runScript(t, &fakeExec{loggedIn: true}, "help\nexit\n")
	require.Contains(t, strings.Join(out, ""), "upload, delete [id]")
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "")
	require.Empty(t, f.calls)
}

func TestREPL_SkipsBlankLines(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	runScript(t, f, "\n\nlist\nexit\n")
	require.Equal(t, []string{"list"}, f.calls)
}
