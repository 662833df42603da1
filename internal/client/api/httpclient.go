package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/docuscope/docuscope-cli/internal/client/models"
)

// HTTPClient implements Client against the backend's JSON/multipart API.
// It holds the bearer token of the current session; SignUp and SignIn
// replace it on success.
type HTTPClient struct {
	baseURL     string
	client      *http.Client
	accessToken string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// SetToken replaces the bearer token attached to subsequent requests.
func (c *HTTPClient) SetToken(token string) {
	c.accessToken = token
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (c *HTTPClient) SignUp(ctx context.Context, creds models.Credentials) (string, error) {
	body := map[string]string{
		"name":     creds.DisplayName,
		"email":    creds.Email,
		"password": creds.Password,
	}

	var out tokenResponse
	if err := c.postJSON(ctx, "/auth/signup", body, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrMalformedResponse)
	}

	c.accessToken = out.AccessToken
	return out.AccessToken, nil
}

func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}

	var out tokenResponse
	if err := c.postJSON(ctx, "/auth/login", body, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrMalformedResponse)
	}

	c.accessToken = out.AccessToken
	return out.AccessToken, nil
}

// UploadDocument sends payload as the multipart "file" field and decodes the
// acknowledged document descriptor. Exactly one request is issued; retrying
// is the caller's decision.
func (c *HTTPClient) UploadDocument(ctx context.Context, name, contentType string, payload io.Reader) (*models.DocumentRecord, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, name))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("create multipart: %w", err)
	}
	if _, err := io.Copy(part, payload); err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/documents/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var rec models.DocumentRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &rec, nil
}

func (c *HTTPClient) ListDocuments(ctx context.Context) ([]models.DocumentRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/documents", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out struct {
		Documents []models.DocumentRecord `json:"documents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return out.Documents, nil
}

func (c *HTTPClient) DeleteDocument(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/documents/"+id, nil)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// do sends the request with the bearer token attached and maps transport
// failures and non-success statuses to the package's error taxonomy.
func (c *HTTPClient) do(req *http.Request) (*http.Response, error) {
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		apiErr := &APIError{StatusCode: resp.StatusCode}

		var body errorResponse
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if err := json.Unmarshal(raw, &body); err == nil {
			apiErr.Detail = body.Detail
		}
		return nil, apiErr
	}

	return resp, nil
}
