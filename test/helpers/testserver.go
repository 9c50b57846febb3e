package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"niddle_backend/internal/auth"
	"niddle_backend/internal/email"
	"niddle_backend/internal/handlers"
	"niddle_backend/internal/logger"
	"niddle_backend/internal/routes"
	"niddle_backend/internal/services"
	"niddle_backend/internal/storage"
	"niddle_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TestServer runs the full application against an in-memory database,
// a temp-dir file store and a recording mail provider.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Mailer *email.MockProvider

	// Tx, when set, is injected into every request's context so the
	// whole request runs inside the test's transaction.
	Tx *gorm.DB
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger.Init("test")
	auth.Configure("test-secret", time.Hour)

	db := NewTestDB(t)

	store, err := storage.NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("failed to init test storage: %v", err)
	}

	mailer := email.NewMockProvider()
	svc := services.NewServiceContainer(store, mailer)
	h := handlers.NewAppHandlers(svc, store)
	router := routes.SetupRouter(db, h)

	ts := &TestServer{DB: db, Mailer: mailer}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ts.Tx != nil {
			r = r.WithContext(context.WithValue(r.Context(), contextkeys.DBContextKey, ts.Tx))
		}
		router.ServeHTTP(w, r)
	}))

	t.Cleanup(ts.Server.Close)
	return ts
}

// SendRequest performs a JSON request against the test server.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(resBody)
}

// SendMultipart performs a multipart form request. files maps part name
// to file content; a .jpg filename is used for every part.
func (ts *TestServer) SendMultipart(t *testing.T, method, path, token string, fields map[string]string, files map[string][]byte) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, val := range fields {
		if err := writer.WriteField(key, val); err != nil {
			t.Fatalf("failed to write form field %s: %v", key, err)
		}
	}
	for name, content := range files {
		part, err := writer.CreateFormFile(name, name+".jpg")
		if err != nil {
			t.Fatalf("failed to create file part %s: %v", name, err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("failed to write file part %s: %v", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(resBody)
}
