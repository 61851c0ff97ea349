package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kwhitfield/docforge/internal/config"
	"github.com/kwhitfield/docforge/internal/content"
)

func testServer(t *testing.T, cfg config.Config) *Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cfg.MaxUploadBytes == 0 {
		cfg.MaxUploadBytes = 10 << 20
	}
	return NewServer(content.Catalog(), log, cfg)
}

func TestHealth(t *testing.T) {
	srv := testServer(t, config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("unexpected health body: %s", rec.Body.String())
	}
}

func TestListDocuments(t *testing.T) {
	srv := testServer(t, config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/documents", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Documents []string `json:"documents"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := content.Names()
	if len(body.Documents) != len(want) {
		t.Fatalf("documents = %v, want %v", body.Documents, want)
	}
	for i, name := range want {
		if body.Documents[i] != name {
			t.Errorf("documents[%d] = %q, want %q", i, body.Documents[i], name)
		}
	}
}

func TestGetDocument(t *testing.T) {
	srv := testServer(t, config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/documents/client-proposal", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != docxContentType {
		t.Errorf("content type = %q, want %q", ct, docxContentType)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, ".docx") {
		t.Errorf("content disposition should name a docx file: %q", cd)
	}
	// A docx package is a ZIP archive.
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")) {
		t.Errorf("response body is not a zip archive")
	}
}

func TestGetDocument_Unknown(t *testing.T) {
	srv := testServer(t, config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/documents/nope", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAuth(t *testing.T) {
	srv := testServer(t, config.Config{APIKey: "secret"})

	// Health stays public.
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("health should not require auth, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/documents", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/documents", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with wrong token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/documents", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with valid token, got %d", rec.Code)
	}
}

func uploadRequest(t *testing.T, filename, body string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := io.WriteString(fw, body); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/render", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestRender_Markdown(t *testing.T) {
	srv := testServer(t, config.Config{})

	md := "# Quarterly Report\n\n# Summary\n\nAll good.\n\n- item one\n- item two\n"
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, uploadRequest(t, "report.md", md))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != docxContentType {
		t.Errorf("content type = %q, want %q", ct, docxContentType)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")) {
		t.Errorf("response body is not a zip archive")
	}
}

func TestRender_UnsupportedExtension(t *testing.T) {
	srv := testServer(t, config.Config{})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, uploadRequest(t, "report.txt", "plain text"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported extension, got %d", rec.Code)
	}
}

func TestRender_MissingFile(t *testing.T) {
	srv := testServer(t, config.Config{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("other", "value")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/render", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without a file part, got %d", rec.Code)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"report.md", "report.md"},
		{"../../etc/passwd", "passwd"},
		{"dir/report.md", "report.md"},
		{"", "unnamed"},
	}
	for _, c := range cases {
		if got := sanitizeFilename(c.in); got != c.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
