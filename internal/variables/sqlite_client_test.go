package variables

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"vardeck/internal/domain"
	appErrors "vardeck/internal/errors"
)

func newTestSQLiteClient(t *testing.T, opts ...SQLiteOption) Client {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "variables.db")
	base := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	seq := 0
	opts = append([]SQLiteOption{withClock(
		func() time.Time { return base },
		func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		},
	)}, opts...)
	client, err := NewSQLiteClient(dbPath, opts...)
	if err != nil {
		t.Fatalf("NewSQLiteClient: %v", err)
	}
	return client
}

func TestSQLiteClientCreateAndList(t *testing.T) {
	client := newTestSQLiteClient(t)
	ctx := context.Background()

	reqs := []domain.CreateRequest{
		{Name: "zeta", Value: map[string]any{"n": json.Number("12345678901234567890")}, Tags: []string{"ops"}},
		{Name: "alpha", Value: nil, Tags: []string{}},
	}
	for _, req := range reqs {
		if _, err := client.Create(ctx, req); err != nil {
			t.Fatalf("Create(%s): %v", req.Name, err)
		}
	}

	got, err := client.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	stamp := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	want := []domain.Variable{
		{ID: "id-2", Name: "alpha", Value: nil, Tags: []string{}, Created: stamp, Updated: stamp},
		{ID: "id-1", Name: "zeta", Value: map[string]any{"n": json.Number("12345678901234567890")}, Tags: []string{"ops"}, Created: stamp, Updated: stamp},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLiteClientDuplicateName(t *testing.T) {
	client := newTestSQLiteClient(t)
	ctx := context.Background()
	req := domain.CreateRequest{Name: "dup", Value: "x", Tags: []string{}}

	if _, err := client.Create(ctx, req); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := client.Create(ctx, req)
	if !appErrors.IsCode(err, appErrors.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if got := appErrors.MessageOf(err); got != MsgAlreadyExists {
		t.Errorf("message = %q, want %q", got, MsgAlreadyExists)
	}
}

func TestSQLiteClientListLimit(t *testing.T) {
	client := newTestSQLiteClient(t, WithSQLiteListLimit(2))
	ctx := context.Background()
	for _, name := range []string{"cc", "aa", "bb"} {
		if _, err := client.Create(ctx, domain.CreateRequest{Name: name, Value: 1, Tags: []string{}}); err != nil {
			t.Fatalf("Create(%s): %v", name, err)
		}
	}
	got, err := client.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var names []string
	for _, v := range got {
		names = append(names, v.Name)
	}
	if diff := cmp.Diff([]string{"aa", "bb"}, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLiteClientEmptyList(t *testing.T) {
	client := newTestSQLiteClient(t)
	got, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestNewSQLiteClientRequiresPath(t *testing.T) {
	_, err := NewSQLiteClient("   ")
	if !appErrors.IsCode(err, appErrors.CodeConfigurationError) {
		t.Fatalf("expected configuration_error, got %v", err)
	}
}

func TestBuildSQLiteDSN(t *testing.T) {
	dsn := buildSQLiteDSN("/tmp/vardeck/variables.db")
	want := "file:///tmp/vardeck/variables.db?_pragma=busy_timeout%283000%29&_pragma=journal_mode%28WAL%29"
	if dsn != want {
		t.Fatalf("dsn = %q, want %q", dsn, want)
	}
}
