package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nmlgraph/nmlgraph/pkg/nml"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the browse command, an interactive entity browser
// over a built topology.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [manifest]",
		Short: "Browse a topology's entities interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := buildFromManifest(args[0])
			if err != nil {
				return err
			}
			model := newEntityListModel(m.Namespace().Entities())
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

// =============================================================================
// EntityListModel - Interactive entity browsing
// =============================================================================

// entityListModel is the bubbletea model for browsing registered entities.
// The left pane lists entities in registration order; enter opens a detail
// view of the selected entity's attributes and populated relations.
type entityListModel struct {
	entities []*nml.Entity
	cursor   int
	offset   int
	height   int
	detail   *nml.Entity // non-nil while the detail view is open
}

func newEntityListModel(entities []*nml.Entity) entityListModel {
	return entityListModel{entities: entities, height: 15}
}

func (m entityListModel) Init() tea.Cmd {
	return nil
}

func (m entityListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.detail != nil {
				m.detail = nil
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if m.detail == nil && m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.detail == nil && m.cursor < len(m.entities)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			if m.detail == nil && len(m.entities) > 0 {
				m.detail = m.entities[m.cursor]
			} else {
				m.detail = nil
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m entityListModel) View() string {
	if m.detail != nil {
		return m.detailView()
	}
	return m.listView()
}

func (m entityListModel) listView() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Topology Entities"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ inspect  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.entities) {
		end = len(m.entities)
	}

	for i := m.offset; i < end; i++ {
		e := m.entities[i]
		line := fmt.Sprintf("%-20s %s", e.Kind(), e.Name().Or(e.Identifier()))

		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%d entities", len(m.entities))))
	return b.String()
}

func (m entityListModel) detailView() string {
	e := m.detail
	var b strings.Builder

	b.WriteString(StyleTitle.Render(string(e.Kind())))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  q quit"))
	b.WriteString("\n\n")

	schema, _ := nml.SchemaOf(e.Kind())
	for _, attr := range schema.Attributes {
		v, err := e.Attribute(attr.Name)
		if err != nil || !v.IsSet() {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s %s\n",
			listDimStyle.Render(fmt.Sprintf("%-12s", attr.Name)),
			StyleValue.Render(v.Or(""))))
	}

	for _, rel := range schema.Relations {
		targets, err := e.Related(rel.Name)
		if err != nil {
			continue
		}
		var lines []string
		for _, t := range targets {
			if t == nil {
				continue
			}
			lines = append(lines, fmt.Sprintf("%s (%s)", t.Name().Or(t.Identifier()), t.Kind()))
		}
		if len(lines) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString("  " + StyleHighlight.Render(rel.Name) + "\n")
		for _, line := range lines {
			b.WriteString("    " + listNormalStyle.Render(line) + "\n")
		}
	}

	return b.String()
}
