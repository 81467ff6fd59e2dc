package classify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	classifyService "github.com/mindhavenapp/mindhaven/backend/internal/service/classify"
)

func newTestHandler() *Handler {
	return New(classifyService.NewService(), zap.NewNop())
}

func postClassify(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/classify", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newTestHandler().Handle(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return body
}

func TestHandleClassifySuccess(t *testing.T) {
	rec := postClassify(t, `{"message":"I am so sad today","botType":"triple_m"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := decodeBody(t, rec)
	if body["response"] == "" {
		t.Fatal("expected a non-empty response")
	}
}

func TestHandleClassifyMissingFields(t *testing.T) {
	for name, payload := range map[string]string{
		"empty object":    `{}`,
		"missing message": `{"botType":"triple_m"}`,
		"missing botType": `{"message":"hello"}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := postClassify(t, payload)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			body := decodeBody(t, rec)
			if got, want := body["error"], "Message and botType are required"; got != want {
				t.Fatalf("error = %q, want %q", got, want)
			}
		})
	}
}

func TestHandleClassifyUnparseableBody(t *testing.T) {
	rec := postClassify(t, `{not json`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	body := decodeBody(t, rec)
	if got, want := body["error"], "Internal server error"; got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestHandleClassifyUnknownBot(t *testing.T) {
	rec := postClassify(t, `{"message":"hello","botType":"unknown_bot"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := decodeBody(t, rec)
	if body["response"] != classifyService.GenericFallback {
		t.Fatalf("response = %q, want the generic fallback", body["response"])
	}
}
