package stub

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/docuscope/docuscope-cli/internal/client/models"
	"github.com/docuscope/docuscope-cli/internal/logging"
	"github.com/stretchr/testify/require"
)

func newStub(t *testing.T) *httptest.Server {
	t.Helper()
	s := NewServer("test-secret", logging.NewTextLogger(io.Discard))
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func signUp(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp := postJSON(t, srv.URL+"/auth/signup", map[string]string{
		"name": "Jane Doe", "email": "jane@example.com", "password": "secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[map[string]string](t, resp)["access_token"]
}

func uploadFile(t *testing.T, srv *httptest.Server, token, filename, content string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	fmt.Fprint(part, content)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/documents/upload", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	srv := newStub(t)
	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	srv := newStub(t)
	require.NotEmpty(t, signUp(t, srv))

	resp := postJSON(t, srv.URL+"/auth/signup", map[string]string{
		"name": "Jane Doe", "email": "jane@example.com", "password": "secret",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "User already exists", decode[map[string]string](t, resp)["detail"])
}

func TestLogin(t *testing.T) {
	srv := newStub(t)
	signUp(t, srv)

	resp := postJSON(t, srv.URL+"/auth/login", map[string]string{
		"email": "jane@example.com", "password": "secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, decode[map[string]string](t, resp)["access_token"])

	resp = postJSON(t, srv.URL+"/auth/login", map[string]string{
		"email": "jane@example.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Invalid credentials", decode[map[string]string](t, resp)["detail"])
}

func TestDocuments_RequireAuth(t *testing.T) {
	srv := newStub(t)

	resp, err := http.Get(srv.URL + "/documents")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUploadListDelete_RoundTrip(t *testing.T) {
	srv := newStub(t)
	token := signUp(t, srv)

	resp := uploadFile(t, srv, token, "Report.pdf", "%PDF-1.4 body")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rec := decode[models.DocumentRecord](t, resp)
	require.NotEmpty(t, rec.ID)
	require.Equal(t, "Report.pdf", rec.Name)
	require.Equal(t, models.MediaTypePDF, rec.MediaType)
	require.Equal(t, "Jane Doe", rec.UploadedBy)

	resp = uploadFile(t, srv, token, "Notes.txt", "notes")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	second := decode[models.DocumentRecord](t, resp)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/documents", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	listResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer listResp.Body.Close()

	list := decode[map[string][]models.DocumentRecord](t, listResp)
	require.Len(t, list["documents"], 2)
	// most recent first
	require.Equal(t, second.ID, list["documents"][0].ID)

	req, err = http.NewRequest(http.MethodDelete, srv.URL+"/documents/"+rec.ID, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	delResp.Body.Close()
	require.Equal(t, http.StatusNoContent, delResp.StatusCode)

	// deleting again reports not found
	req, err = http.NewRequest(http.MethodDelete, srv.URL+"/documents/"+rec.ID, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	delResp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	delResp.Body.Close()
	require.Equal(t, http.StatusNotFound, delResp.StatusCode)
}

func TestUpload_RejectsUnsupportedType(t *testing.T) {
	srv := newStub(t)
	token := signUp(t, srv)

	resp := uploadFile(t, srv, token, "tool.exe", "MZ")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
