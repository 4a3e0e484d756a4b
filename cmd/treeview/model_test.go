package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tjvneste/Tree-visualization/internal/newick"
	"github.com/tjvneste/Tree-visualization/phylo/prune"
)

func testModel(t *testing.T) Model {
	t.Helper()
	tree, err := newick.ParseString("((A:0.0001,B:0.0001)N1:0.5,C:0.5)Root;")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	prune.Classify(tree, prune.NewStrainSet("B"), prune.NewStrainSet("A"))
	return NewModel("tree.nwk", tree)
}

func TestModelNotReadyBeforeSize(t *testing.T) {
	m := testModel(t)
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View before sizing = %q", got)
	}
}

func TestModelShowsTreeAfterSize(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)

	view := m.View()
	for _, want := range []string{"treeview", "tree.nwk", "A", "B", "C", "3 leaves"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelQuits(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}

func TestSplitNames(t *testing.T) {
	got := splitNames(" A , B ,,C ")
	if len(got) != 3 || got[0] != "A" || got[1] != "B" || got[2] != "C" {
		t.Fatalf("splitNames = %#v", got)
	}
}

func TestContentIndentation(t *testing.T) {
	m := testModel(t)
	lines := strings.Split(strings.TrimRight(m.content(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[2], "    ") {
		t.Errorf("leaf A not indented: %q", lines[2])
	}
}
