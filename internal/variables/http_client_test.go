package variables

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"vardeck/internal/domain"
	appErrors "vardeck/internal/errors"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewHTTPClient(srv.URL+"/api/", WithHTTPClient(srv.Client()), WithAPIKey("secret"), WithListLimit(5))
	return srv, client
}

func TestHTTPClientCreate(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var gotBody map[string]any
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/variables/" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"v-1","name":"retries","value":{"max":3},"tags":["ops"],
			"created":"2024-03-01T12:00:00Z","updated":"2024-03-01T12:00:00Z"}`)
	})

	req := domain.CreateRequest{
		Name:  "retries",
		Value: map[string]any{"max": json.Number("3")},
		Tags:  []string{"ops"},
	}
	got, err := client.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	wantBody := map[string]any{
		"name":  "retries",
		"value": map[string]any{"max": json.Number("3")},
		"tags":  []any{"ops"},
	}
	if diff := cmp.Diff(wantBody, gotBody); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}

	want := domain.Variable{
		ID:      "v-1",
		Name:    "retries",
		Value:   map[string]any{"max": json.Number("3")},
		Tags:    []string{"ops"},
		Created: created,
		Updated: created,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("variable mismatch (-want +got):\n%s", diff)
	}
}

func TestHTTPClientCreateSendsEmptyTags(t *testing.T) {
	var raw string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		raw = string(b)
		_, _ = io.WriteString(w, `{"id":"v-2","name":"flag","value":true}`)
	})

	req := domain.NewCreateRequest(domain.FormState{Name: "flag"}, true)
	got, err := client.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.Contains(raw, `"tags":[]`) {
		t.Errorf("expected empty tag list in body, got %s", raw)
	}
	if got.Tags == nil || len(got.Tags) != 0 {
		t.Errorf("expected non-nil empty tags, got %#v", got.Tags)
	}
}

func TestHTTPClientErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode appErrors.Code
		wantMsg  string
	}{
		{
			name:     "conflict uses detail",
			status:   http.StatusConflict,
			body:     `{"detail":"A variable with the name \"retries\" already exists."}`,
			wantCode: appErrors.CodeConflict,
			wantMsg:  `A variable with the name "retries" already exists.`,
		},
		{
			name:     "conflict without body",
			status:   http.StatusConflict,
			wantCode: appErrors.CodeConflict,
			wantMsg:  MsgAlreadyExists,
		},
		{
			name:     "validation list",
			status:   http.StatusUnprocessableEntity,
			body:     `{"detail":[{"msg":"name too long"},{"msg":"bad tag"}]}`,
			wantCode: appErrors.CodeInvalidRequest,
			wantMsg:  "name too long; bad tag",
		},
		{
			name:     "server error",
			status:   http.StatusInternalServerError,
			body:     `oops`,
			wantCode: appErrors.CodeRemoteFailed,
			wantMsg:  "Server error: 500 Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			_, err := client.Create(context.Background(), domain.CreateRequest{Name: "retries", Value: 1, Tags: []string{}})
			if err == nil {
				t.Fatal("expected error")
			}
			if got := appErrors.CodeOf(err); got != tt.wantCode {
				t.Errorf("code = %q, want %q", got, tt.wantCode)
			}
			if got := appErrors.MessageOf(err); got != tt.wantMsg {
				t.Errorf("message = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestHTTPClientTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	hc := srv.Client()
	url := srv.URL
	srv.Close()

	client := NewHTTPClient(url, WithHTTPClient(hc))
	_, err := client.List(context.Background())
	if !appErrors.IsCode(err, appErrors.CodeTransportFailed) {
		t.Fatalf("expected transport_failed, got %v", err)
	}
	if !strings.HasPrefix(appErrors.MessageOf(err), "Could not reach the variables API") {
		t.Errorf("unexpected message %q", appErrors.MessageOf(err))
	}
}

func TestHTTPClientList(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/variables/filter" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["sort"] != "NAME_ASC" || body["limit"] != float64(5) {
			t.Errorf("unexpected filter body %v", body)
		}
		_, _ = io.WriteString(w, `[{"id":"1","name":"a1","value":"x","tags":null},{"id":"2","name":"b2","value":[1,2],"tags":["t1"]}]`)
	})

	got, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []domain.Variable{
		{ID: "1", Name: "a1", Value: "x", Tags: []string{}},
		{ID: "2", Name: "b2", Value: []any{json.Number("1"), json.Number("2")}, Tags: []string{"t1"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestHTTPClientHonorsContext(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.List(ctx); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestHTTPClientRequiresURL(t *testing.T) {
	client := NewHTTPClient("  ")
	_, err := client.List(context.Background())
	if !appErrors.IsCode(err, appErrors.CodeConfigurationError) {
		t.Fatalf("expected configuration_error, got %v", err)
	}
}
