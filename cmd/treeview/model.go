package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tjvneste/Tree-visualization/phylo"
)

const (
	headerHeight = 2
	statusHeight = 2
)

// Model is the bubbletea model for the tree viewer.
type Model struct {
	path  string
	tree  *phylo.Tree
	stats phylo.Stats

	viewport viewport.Model
	ready    bool
}

// NewModel creates the viewer model for an already loaded (and classified)
// tree.
func NewModel(path string, t *phylo.Tree) Model {
	return Model{
		path:  path,
		tree:  t,
		stats: t.Stats(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		vpHeight := msg.Height - headerHeight - statusHeight
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.viewport.SetContent(m.content())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("treeview") + " " + pathStyle.Render(m.path)
	status := statusStyle.Render(fmt.Sprintf("%d leaves · %d nodes · depth %d",
		m.stats.Leaves, m.stats.Nodes, m.stats.MaxDepth)) +
		helpStyle.Render("  j/k scroll · g/G top/bottom · q quit")
	return header + "\n\n" + m.viewport.View() + "\n" + status
}

// content renders the whole tree as indented, styled lines. The viewport
// handles scrolling over it.
func (m Model) content() string {
	var b strings.Builder
	depth := make(map[*phylo.Node]int)
	m.tree.Walk(func(n *phylo.Node) bool {
		if p := n.Parent(); p != nil {
			depth[n] = depth[p] + 1
		}
		b.WriteString(strings.Repeat("  ", depth[n]))
		b.WriteString(nodeLine(n))
		b.WriteByte('\n')
		return true
	})
	return b.String()
}

func nodeLine(n *phylo.Node) string {
	name := n.Name
	if name == "" {
		name = "-"
	}
	dist := ""
	if !n.IsRoot() {
		dist = distStyle.Render(":" + strconv.FormatFloat(n.Dist, 'g', -1, 64))
	}
	if !n.IsLeaf() {
		return internalStyle.Render(name) + dist
	}

	marker, style := defaultMarker, defaultLeafStyle
	if n.Style != nil {
		switch n.Style.Class {
		case phylo.ClassTypeStrain:
			marker, style = typeMarker, typeLeafStyle
		case phylo.ClassSampleStrain:
			marker, style = sampleMarker, sampleLeafStyle
		}
	}
	return style.Render(marker+" "+name) + dist
}
