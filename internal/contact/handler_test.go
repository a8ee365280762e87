package contact

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func multipartBody(t *testing.T, fields map[string]string, filename string, file []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if filename != "" {
		fw, err := w.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(file); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func newTestApp(fm *fakeMailer) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(NewInMemoryRepository(nil), fm)).RegisterPublicRoutes(app)
	return app
}

func TestSendEmailRoute(t *testing.T) {
	fm := &fakeMailer{}
	app := newTestApp(fm)

	body, contentType := multipartBody(t, map[string]string{
		"name": "Jenny", "email": "jenny@example.com", "subject": "Quote", "message": "Hello",
	}, "", nil)
	req := httptest.NewRequest("POST", "/api/sendEmail", body)
	req.Header.Set("Content-Type", contentType)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	out, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(out), `"success":true`) {
		t.Fatalf("expected success response, got %s", string(out))
	}
	if len(fm.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(fm.sent))
	}
}

func TestSendEmailRoute_MissingFields(t *testing.T) {
	fm := &fakeMailer{}
	app := newTestApp(fm)

	body, contentType := multipartBody(t, map[string]string{"name": "Jenny"}, "", nil)
	req := httptest.NewRequest("POST", "/api/sendEmail", body)
	req.Header.Set("Content-Type", contentType)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestSendEmailRoute_Attachment(t *testing.T) {
	fm := &fakeMailer{}
	app := newTestApp(fm)

	body, contentType := multipartBody(t, map[string]string{
		"name": "Jenny", "email": "jenny@example.com", "message": "see attached",
	}, "brief.txt", []byte("attached content"))
	req := httptest.NewRequest("POST", "/api/sendEmail", body)
	req.Header.Set("Content-Type", contentType)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	att := fm.sent[0].Attachment
	if att == nil || att.Filename != "brief.txt" || string(att.Content) != "attached content" {
		t.Fatalf("expected attachment to reach the mailer, got %+v", att)
	}
}
