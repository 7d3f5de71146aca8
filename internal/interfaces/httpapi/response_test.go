package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/openpitch/statsbomb-api/internal/usecase"
)

func TestWriteSuccess_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["success"].(bool); !got {
		t.Fatalf("expected success=true, got %v", body["success"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad match id", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["success"].(bool); got {
		t.Fatalf("expected success=false, got %v", body["success"])
	}
	if got, _ := body["error"].(string); got == "" {
		t.Fatalf("expected error message in response, got %v", body["error"])
	}
	if _, ok := body["data"]; ok {
		t.Fatalf("did not expect data key in error response")
	}
}

func TestHTTPStatusFor_MapsSentinels(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid input", err: usecase.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "not found", err: usecase.ErrNotFound, want: http.StatusNotFound},
		{name: "unauthorized", err: usecase.ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "dependency unavailable", err: usecase.ErrDependencyUnavailable, want: http.StatusServiceUnavailable},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := httpStatusFor(context.Background(), fmt.Errorf("wrapped: %w", tc.err)); got != tc.want {
				t.Fatalf("expected status %d, got %d", tc.want, got)
			}
		})
	}
}
