package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func typeTags(t *testing.T, in TagInput, msgs ...tea.Msg) TagInput {
	t.Helper()
	for _, msg := range msgs {
		in, _, _ = in.Update(msg)
	}
	return in
}

func TestTagInputCommitsOnEnterAndComma(t *testing.T) {
	in := NewTagInput(40)
	in.Focus()
	in = typeTags(t, in,
		keyRunes("prod"), keyType(tea.KeyEnter),
		keyRunes("ops"), keyRunes(","),
		keyType(tea.KeyEnter), // empty input adds nothing
	)
	if diff := cmp.Diff([]string{"prod", "ops"}, in.Tags()); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
	if in.Pending() != "" {
		t.Errorf("pending = %q, want empty", in.Pending())
	}
}

func TestTagInputDuplicateFlashes(t *testing.T) {
	in := NewTagInput(40)
	in.Focus()
	in = typeTags(t, in, keyRunes("prod"), keyType(tea.KeyEnter), keyRunes("prod"))

	in, changed, cmd := in.Update(keyType(tea.KeyEnter))
	if changed {
		t.Fatal("duplicate must not change tags")
	}
	if cmd == nil || in.flashIndex != 0 {
		t.Fatalf("expected flash on chip 0, got index %d", in.flashIndex)
	}
	in, _, _ = in.Update(tagFlashClearMsg{})
	if in.flashIndex != -1 {
		t.Fatal("flash should clear")
	}
}

func TestTagInputBackspaceRemovesLast(t *testing.T) {
	in := NewTagInput(40)
	in.Focus()
	in.SetTags([]string{"aa", "bb"})

	in, changed, _ := in.Update(keyType(tea.KeyBackspace))
	if !changed {
		t.Fatal("backspace on empty input should remove a tag")
	}
	if diff := cmp.Diff([]string{"aa"}, in.Tags()); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestTagInputNavigationDelete(t *testing.T) {
	in := NewTagInput(40)
	in.Focus()
	in.SetTags([]string{"aa", "bb", "cc"})

	in = typeTags(t, in, keyType(tea.KeyLeft), keyType(tea.KeyLeft))
	if in.navIndex != 1 {
		t.Fatalf("navIndex = %d, want 1", in.navIndex)
	}
	in, changed, _ := in.Update(keyType(tea.KeyDelete))
	if !changed {
		t.Fatal("delete should remove the highlighted tag")
	}
	if diff := cmp.Diff([]string{"aa", "cc"}, in.Tags()); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}

	in = typeTags(t, in, keyType(tea.KeyRight), keyType(tea.KeyRight))
	if in.navIndex != -1 {
		t.Fatalf("moving past the last chip should return to typing, navIndex=%d", in.navIndex)
	}
}

func TestTagInputViewWrapsChips(t *testing.T) {
	in := NewTagInput(12)
	in.SetTags([]string{"alpha", "beta", "gamma"})
	view := plain(in.View())
	lines := strings.Split(view, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected chips to wrap onto several rows:\n%s", view)
	}
	for _, tag := range []string{"alpha", "beta", "gamma"} {
		if !strings.Contains(view, tag) {
			t.Errorf("view missing %q", tag)
		}
	}
}

func TestTagInputTagsIsACopy(t *testing.T) {
	in := NewTagInput(40)
	in.SetTags([]string{"aa"})
	got := in.Tags()
	got[0] = "zz"
	if in.Tags()[0] != "aa" {
		t.Fatal("Tags must not alias internal state")
	}
}
