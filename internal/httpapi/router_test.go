package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestStatusRecorderWriteTracksAndTruncates(t *testing.T) {
	base := httptest.NewRecorder()
	recorder := &statusRecorder{
		ResponseWriter: base,
		statusCode:     http.StatusOK,
		maxLogBytes:    10,
	}

	payload := []byte("abcdefghijklmnopqrstuvwxyz")
	written, err := recorder.Write(payload)
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if written != len(payload) {
		t.Fatalf("written bytes = %d, want %d", written, len(payload))
	}
	if recorder.bytesWritten != len(payload) {
		t.Fatalf("bytesWritten = %d, want %d", recorder.bytesWritten, len(payload))
	}
	if recorder.logBody.Len() != 10 {
		t.Fatalf("log body length = %d, want 10", recorder.logBody.Len())
	}
	if !recorder.truncated {
		t.Fatalf("expected truncated flag to be true")
	}
	if base.Body.String() != string(payload) {
		t.Fatalf("underlying writer got %q", base.Body.String())
	}
}

func TestStatusRecorderKeepsStatus(t *testing.T) {
	recorder := &statusRecorder{ResponseWriter: httptest.NewRecorder(), statusCode: http.StatusOK, maxLogBytes: 64}
	recorder.WriteHeader(http.StatusInternalServerError)
	_, _ = recorder.Write([]byte("short"))

	if recorder.statusCode != http.StatusInternalServerError || recorder.truncated {
		t.Fatalf("unexpected recorder state: status=%d truncated=%v", recorder.statusCode, recorder.truncated)
	}
}

func TestWriteMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	writeMethodNotAllowed(rec, http.MethodPost)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
	if got := rec.Header().Get("Allow"); got != http.MethodPost {
		t.Fatalf("allow header = %q, want %q", got, http.MethodPost)
	}

	var payload errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error != "method not allowed" {
		t.Fatalf("error payload = %q", payload.Error)
	}
}

func TestMethodOverride(t *testing.T) {
	var seen string
	handler := methodOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Method
	}))

	cases := []struct {
		name   string
		build  func() *http.Request
		method string
		status int
	}{
		{
			name: "form field",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/quizzes/1", strings.NewReader(url.Values{"_method": {"put"}}.Encode()))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return req
			},
			method: http.MethodPut,
			status: http.StatusOK,
		},
		{
			name: "query parameter",
			build: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/quizzes/1?_method=DELETE", nil)
			},
			method: http.MethodDelete,
			status: http.StatusOK,
		},
		{
			name: "get is never overridden",
			build: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/quizzes/1?_method=DELETE", nil)
			},
			method: http.MethodGet,
			status: http.StatusOK,
		},
		{
			name: "json body untouched",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/quizzes", strings.NewReader(`{"question":"q"}`))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
			method: http.MethodPost,
			status: http.StatusOK,
		},
		{
			name: "unsupported override",
			build: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/quizzes/1?_method=PATCH", nil)
			},
			status: http.StatusMethodNotAllowed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seen = ""
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, tc.build())

			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			if seen != tc.method {
				t.Fatalf("method = %q, want %q", seen, tc.method)
			}
		})
	}
}
