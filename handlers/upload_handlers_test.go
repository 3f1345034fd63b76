package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quickreel/backend/internal/apperror"
	"quickreel/backend/models"
)

func TestUploadAssets_Success(t *testing.T) {
	app, dir := newTestApp(t)

	body, ct := buildMultipartBody(t, map[string][]byte{
		"clip.mp4":  []byte("fake video bytes"),
		"still.png": []byte("fake image bytes"),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d, want 200", resp.StatusCode)
	}

	env := decodeEnvelope(t, resp)
	if env.Status != "success" {
		t.Errorf("envelope status: got %q", env.Status)
	}

	var result models.UploadResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if result.Count != 2 || len(result.Files) != 2 {
		t.Fatalf("count: got %d (%d files), want 2", result.Count, len(result.Files))
	}

	for _, f := range result.Files {
		if f.StoredAs == f.Original {
			t.Errorf("stored name %q must differ from client name", f.StoredAs)
		}
		if want := "http://example.com/uploads/" + f.StoredAs; f.URL != want {
			t.Errorf("url: got %q, want %q", f.URL, want)
		}
		if _, err := os.Stat(filepath.Join(dir, f.StoredAs)); err != nil {
			t.Errorf("stored file missing on disk: %v", err)
		}
	}
}

func TestUploadAssets_ServesStoredBytesBack(t *testing.T) {
	app, _ := newTestApp(t)

	content := []byte("roundtrip payload")
	body, ct := buildMultipartBody(t, map[string][]byte{"file.bin": content})
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	env := decodeEnvelope(t, resp)

	var result models.UploadResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode data: %v", err)
	}

	getResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/uploads/"+result.Files[0].StoredAs, nil), -1)
	if err != nil {
		t.Fatalf("app.Test GET: %v", err)
	}
	defer getResp.Body.Close()

	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("static status: got %d, want 200", getResp.StatusCode)
	}
	served, err := io.ReadAll(getResp.Body)
	if err != nil {
		t.Fatalf("read served body: %v", err)
	}
	if !bytes.Equal(served, content) {
		t.Errorf("served bytes differ: got %q, want %q", served, content)
	}
}

func TestUploadAssets_NoFilesField(t *testing.T) {
	app, dir := newTestApp(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("other", "value")
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", resp.StatusCode)
	}

	env := decodeEnvelope(t, resp)
	if env.Status != "error" {
		t.Errorf("envelope status: got %q", env.Status)
	}
	if env.Message != "No files uploaded" {
		t.Errorf("message: got %q", env.Message)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("nothing should be written for an empty batch, found %d entries", len(entries))
	}
}

func TestUploadAssets_NotMultipart(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/upload", `{"files": "nope"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp)
	if env.Status != "error" {
		t.Errorf("envelope status: got %q", env.Status)
	}
}

func TestUploadAssets_StoreFailureIsOpaque(t *testing.T) {
	app := newTestAppWithStore(t, &stubStore{
		storeFn: func(string, []*multipart.FileHeader) (*models.UploadResult, error) {
			return nil, apperror.NewInternal(errors.New("disk full on /var/uploads"))
		},
	})

	body, ct := buildMultipartBody(t, map[string][]byte{"a.mp4": []byte("x")})
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", resp.StatusCode)
	}

	env := decodeEnvelope(t, resp)
	if env.Status != "error" {
		t.Errorf("envelope status: got %q", env.Status)
	}
	if strings.Contains(env.Message, "disk full") {
		t.Errorf("internal error leaked to client: %q", env.Message)
	}
}
