package ui

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"vardeck/internal/domain"
	appErrors "vardeck/internal/errors"
	"vardeck/internal/ui/theme"
	"vardeck/internal/variables"
)

func TestNewAppRequiresClient(t *testing.T) {
	if _, err := NewApp(Config{}); err == nil {
		t.Fatal("expected error without a client")
	}
}

func TestInitLoadsVariables(t *testing.T) {
	client := newMockClient(sampleVariables())
	app := mustNewTestApp(t, client)

	msg := app.loadVariablesCmd()()
	loaded, ok := msg.(variablesLoadedMsg)
	if !ok {
		t.Fatalf("expected variablesLoadedMsg, got %T", msg)
	}
	app.Update(loaded)
	if app.loading || len(app.vars) != 2 {
		t.Fatalf("unexpected state loading=%v vars=%d", app.loading, len(app.vars))
	}

	view := plain(app.View())
	for _, want := range []string{"vardeck", "2 variables", "api_base", `"https://example.test"`, "retries", `{"max":3}`, "prod", "api test"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestLoadErrorShowsToast(t *testing.T) {
	client := variables.NewMockClient()
	app := mustNewTestApp(t, client)
	app.Update(variablesLoadedMsg{err: appErrors.New(appErrors.CodeTransportFailed, "Could not reach the variables API: refused", nil)})

	if app.toast == nil || app.toast.kind != toastError {
		t.Fatalf("expected error toast, got %+v", app.toast)
	}
	view := plain(app.View())
	if !strings.Contains(view, "Could not reach the variables API") {
		t.Fatalf("view should show load error:\n%s", view)
	}
}

func TestOpenDialogWithN(t *testing.T) {
	app := loadedApp(t, newMockClient(sampleVariables()))
	press(app, keyRunes("n"))

	if !app.createOpen || !app.dialog.IsOpen() {
		t.Fatal("n should open the create dialog")
	}
	view := plain(app.View())
	for _, want := range []string{"New variable", "NAME", "VALUE (JSON)", "TAGS"} {
		if !strings.Contains(view, want) {
			t.Errorf("dialog view missing %q:\n%s", want, view)
		}
	}
}

func TestCreateSuccessClosesAndRefreshes(t *testing.T) {
	client := newMockClient(sampleVariables())
	app := loadedApp(t, client)
	press(app, keyRunes("n"))
	fillDialog(app, "Foo", `{"a":1}`, "xy")

	cmd := press(app, keyType(tea.KeyCtrlS))
	if cmd == nil {
		t.Fatal("submit should return the create command")
	}
	if !app.dialog.Pending() {
		t.Fatal("dialog should be pending while the create runs")
	}
	if !strings.Contains(plain(app.View()), "Creating variable...") {
		t.Fatal("footer should show the pending state")
	}

	result, ok := cmd().(variableCreateResultMsg)
	if !ok {
		t.Fatalf("expected variableCreateResultMsg")
	}
	want := domain.CreateRequest{Name: "Foo", Value: map[string]any{"a": json.Number("1")}, Tags: []string{"xy"}}
	if diff := cmp.Diff(want, client.CreateCallArgs[0]); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}

	if cmd := press(app, result); cmd == nil {
		t.Fatal("success should schedule a refresh")
	}
	if app.createOpen || app.dialog.IsOpen() {
		t.Fatal("dialog should close after success")
	}
	if diff := cmp.Diff(domain.DefaultFormState(), app.dialog.State()); diff != "" {
		t.Errorf("form not reset (-want +got):\n%s", diff)
	}
	if app.toast == nil || !strings.Contains(app.toast.text, "Created variable Foo") {
		t.Fatalf("expected success toast, got %+v", app.toast)
	}

	// Reopening starts from an empty form.
	press(app, keyRunes("n"))
	if app.overlay.name.Value() != "" || app.overlay.value.Value() != "" || len(app.overlay.tags.Tags()) != 0 {
		t.Fatal("widgets should be empty after reopening")
	}
}

func TestSubmitIgnoredWhilePending(t *testing.T) {
	client := newMockClient(nil)
	app := loadedApp(t, client)
	press(app, keyRunes("n"))
	fillDialog(app, "Foo", `1`, "")

	first := press(app, keyType(tea.KeyCtrlS))
	if first == nil {
		t.Fatal("first submit should start a create")
	}
	if cmd := press(app, keyType(tea.KeyCtrlS)); cmd != nil {
		t.Fatal("second submit must not start another create")
	}
	if cmd := press(app, keyType(tea.KeyShiftTab), keyType(tea.KeyEnter)); cmd != nil {
		t.Fatal("enter must be ignored while pending")
	}
	first()
	if client.Creates() != 1 {
		t.Fatalf("create calls = %d, want 1", client.Creates())
	}
}

func TestValidationErrorsRenderUnderFields(t *testing.T) {
	client := newMockClient(nil)
	app := loadedApp(t, client)
	press(app, keyRunes("n"))
	fillDialog(app, "F", `not json`, "x")

	press(app, keyType(tea.KeyCtrlS))
	if app.dialog.Pending() {
		t.Fatal("invalid form must not start a create")
	}
	view := plain(app.View())
	for _, want := range []string{domain.MsgNameTooShort, domain.MsgTagTooShort} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if app.overlay.focus != createFieldName {
		t.Errorf("focus should move to the first invalid field, got %v", app.overlay.focus)
	}
	if client.Creates() != 0 {
		t.Fatalf("create calls = %d, want 0", client.Creates())
	}
}

func TestRemoteFailureShowsRootError(t *testing.T) {
	client := newMockClient(nil)
	client.CreateFn = func(context.Context, domain.CreateRequest) (domain.Variable, error) {
		return domain.Variable{}, appErrors.New(appErrors.CodeConflict, "Variable already exists", nil)
	}
	app := loadedApp(t, client)
	press(app, keyRunes("n"))
	fillDialog(app, "Foo", `"bar"`, "")

	cmd := press(app, keyType(tea.KeyCtrlS))
	press(app, cmd())

	if !app.createOpen {
		t.Fatal("dialog should stay open after a remote failure")
	}
	if got := app.dialog.Errors().Root(); got != "Variable already exists" {
		t.Fatalf("root error = %q", got)
	}
	if !strings.Contains(plain(app.View()), "Variable already exists") {
		t.Fatal("root error should render in the dialog")
	}
	if app.overlay.name.Value() != "Foo" || app.dialog.State().Value != `"bar"` {
		t.Fatal("form should be preserved")
	}
}

func TestEscClosesWhilePendingAndDropsLateResult(t *testing.T) {
	client := newMockClient(nil)
	app := loadedApp(t, client)
	press(app, keyRunes("n"))
	fillDialog(app, "Foo", `1`, "")
	cmd := press(app, keyType(tea.KeyCtrlS))

	press(app, keyType(tea.KeyEsc))
	if app.createOpen {
		t.Fatal("esc should close the dialog even while pending")
	}

	late := cmd()
	refresh := press(app, late)
	if app.createOpen || app.toast != nil {
		t.Fatal("late result must not reopen the dialog or toast")
	}
	if refresh == nil {
		t.Fatal("a late success should still refresh the list")
	}
}

func TestLateFailureAfterCloseIsIgnored(t *testing.T) {
	client := newMockClient(nil)
	client.CreateFn = func(context.Context, domain.CreateRequest) (domain.Variable, error) {
		return domain.Variable{}, errors.New("boom")
	}
	app := loadedApp(t, client)
	press(app, keyRunes("n"))
	fillDialog(app, "Foo", `1`, "")
	cmd := press(app, keyType(tea.KeyCtrlS))

	press(app, keyType(tea.KeyEsc))
	if refresh := press(app, cmd()); refresh != nil {
		t.Fatal("late failure should be a no-op")
	}
	press(app, keyRunes("n"))
	if app.dialog.Errors().Root() != "" {
		t.Fatal("late failure leaked into the next session")
	}
}

func TestEscDiscardsEdits(t *testing.T) {
	app := loadedApp(t, newMockClient(nil))
	press(app, keyRunes("n"))
	fillDialog(app, "draft", `{"x":true}`, "tag1")
	press(app, keyType(tea.KeyEsc))
	press(app, keyRunes("n"))

	if diff := cmp.Diff(domain.DefaultFormState(), app.dialog.State()); diff != "" {
		t.Errorf("state after reopen (-want +got):\n%s", diff)
	}
}

func TestTagsCommitOnSubmit(t *testing.T) {
	client := newMockClient(nil)
	app := loadedApp(t, client)
	press(app, keyRunes("n"))
	press(app, keyRunes("Foo"), keyType(tea.KeyTab), keyRunes("null"), keyType(tea.KeyTab), keyRunes("half"))

	cmd := press(app, keyType(tea.KeyCtrlS))
	if cmd == nil {
		t.Fatal("submit should start a create")
	}
	cmd()
	if diff := cmp.Diff([]string{"half"}, client.CreateCallArgs[0].Tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
	if client.CreateCallArgs[0].Value != nil {
		t.Errorf("null should decode to nil, got %#v", client.CreateCallArgs[0].Value)
	}
}

func TestListNavigationAndCopy(t *testing.T) {
	var copied string
	orig := clipboardWriteFunc
	clipboardWriteFunc = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { clipboardWriteFunc = orig })

	app := loadedApp(t, newMockClient(sampleVariables()))
	press(app, keyRunes("j"), keyRunes("j"), keyRunes("y"))
	if copied != "retries" {
		t.Fatalf("copied %q, want retries", copied)
	}
	if app.toast == nil || !strings.Contains(app.toast.text, "Copied 'retries'") {
		t.Fatalf("expected copy toast, got %+v", app.toast)
	}
	press(app, keyRunes("k"))
	if app.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", app.cursor)
	}
}

func TestCopyFailureShowsErrorToast(t *testing.T) {
	orig := clipboardWriteFunc
	clipboardWriteFunc = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { clipboardWriteFunc = orig })

	app := loadedApp(t, newMockClient(sampleVariables()))
	press(app, keyRunes("y"))
	if app.toast == nil || app.toast.kind != toastError {
		t.Fatalf("expected error toast, got %+v", app.toast)
	}
}

func TestThemeCycleSavesChoice(t *testing.T) {
	var saved string
	orig := saveThemeFunc
	saveThemeFunc = func(name string) error {
		saved = name
		return nil
	}
	t.Cleanup(func() {
		saveThemeFunc = orig
		theme.SetTheme(theme.DefaultName)
	})

	app := loadedApp(t, newMockClient(nil))
	press(app, keyRunes("t"))
	if saved == "" || saved != theme.CurrentName() {
		t.Fatalf("saved %q, current %q", saved, theme.CurrentName())
	}
}

func TestToastExpiry(t *testing.T) {
	app := loadedApp(t, newMockClient(nil))
	app.showToast(toastSuccess, "one")
	first := app.toast.id
	app.showToast(toastSuccess, "two")

	press(app, toastExpiredMsg{id: first})
	if app.toast == nil {
		t.Fatal("an older expiry must not hide a newer toast")
	}
	press(app, toastExpiredMsg{id: app.toast.id})
	if app.toast != nil {
		t.Fatal("toast should expire")
	}
}

func TestQuitKeys(t *testing.T) {
	app := loadedApp(t, newMockClient(nil))
	cmd := press(app, keyRunes("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should return tea.Quit")
	}

	press(app, keyRunes("n"), keyRunes("q"))
	if app.overlay.name.Value() != "q" {
		t.Fatal("q inside the dialog is text")
	}
	cmd = press(app, keyType(tea.KeyCtrlC))
	if cmd == nil {
		t.Fatal("ctrl+c should quit from the dialog")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c should return tea.Quit")
	}
}
