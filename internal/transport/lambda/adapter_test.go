package lambda

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

func echoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Path", r.URL.Path)
		w.Header().Set("X-Exam", r.URL.Query().Get("exam"))
		w.Header().Set("X-Key", r.Header.Get("x-api-key"))
		w.Header().Set("X-Remote", r.RemoteAddr)
		w.WriteHeader(http.StatusTeapot)
		w.Write(body)
	})
}

func TestNewHandlerGetWithQuery(t *testing.T) {
	handler := NewHandler(echoHandler())

	req := events.APIGatewayProxyRequest{
		HTTPMethod:            "GET",
		Path:                  "/v1/exam-quiz",
		QueryStringParameters: map[string]string{"exam": "A1101"},
		Headers:               map[string]string{"x-api-key": "secret"},
	}
	req.RequestContext.Identity.SourceIP = "203.0.113.9"

	resp, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusTeapot {
		t.Errorf("expected status 418, got %d", resp.StatusCode)
	}
	checks := map[string]string{
		"X-Path":       "/v1/exam-quiz",
		"X-Exam":       "A1101",
		"X-Key":        "secret",
		"X-Remote":     "203.0.113.9:0",
		"Content-Type": "application/json",
	}
	for header, want := range checks {
		if got := resp.Headers[header]; got != want {
			t.Errorf("%s: expected %q, got %q", header, want, got)
		}
	}
}

func TestNewHandlerDecodesBase64Body(t *testing.T) {
	handler := NewHandler(echoHandler())

	resp, err := handler(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      "POST",
		Path:            "/v1/chat",
		Body:            base64.StdEncoding.EncodeToString([]byte(`{"userMessage":"hi"}`)),
		IsBase64Encoded: true,
		MultiValueQueryStringParameters: map[string][]string{
			"exam": {"Net09", "Sec701"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Body != `{"userMessage":"hi"}` {
		t.Errorf("unexpected body %q", resp.Body)
	}
	if resp.Headers["X-Exam"] != "Net09" {
		t.Errorf("expected the first multi-value parameter, got %q", resp.Headers["X-Exam"])
	}
}

func TestNewHandlerRejectsBadBase64(t *testing.T) {
	handler := NewHandler(echoHandler())

	resp, err := handler(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      "POST",
		Path:            "/v1/chat",
		Body:            "%%%",
		IsBase64Encoded: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}
