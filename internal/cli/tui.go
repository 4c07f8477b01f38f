package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/stakemap/stakemap/pkg/stakemap"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// MapListModel - Interactive map browser
// =============================================================================

// MapSelection holds the result of the map selection.
type MapSelection struct {
	Map *stakemap.Map
}

// MapListModel is the bubbletea model for browsing and selecting maps.
type MapListModel struct {
	Maps     []stakemap.Map
	Cursor   int
	Selected *MapSelection
	Height   int
	Offset   int
}

// NewMapListModel creates a new map list model.
func NewMapListModel(maps []stakemap.Map) MapListModel {
	return MapListModel{
		Maps:   maps,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m MapListModel) Init() tea.Cmd {
	return nil
}

func (m MapListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Maps)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			selected := m.Maps[m.Cursor]
			m.Selected = &MapSelection{Map: &selected}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m MapListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Map"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Maps) {
		end = len(m.Maps)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		mp := m.Maps[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		visibility := ""
		if mp.IsPrivate {
			visibility = iconPrivate
		}

		rows = append(rows, []string{
			cursor,
			mp.Name,
			mp.Sector,
			fmt.Sprintf("%d", len(mp.Stakeholders)),
			fmt.Sprintf("%d", len(mp.Connections)),
			visibility,
			formatRelativeTime(mp.Updated),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Map", "Sector", "People", "Links", "", "Updated").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Maps) {
				return lipgloss.NewStyle()
			}
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if col == 2 || col == 6 {
				base = base.Foreground(colorDim)
			}
			if isCurrent {
				if col == 2 || col == 6 {
					return base.Foreground(colorGray).Bold(true)
				}
				return base.Foreground(colorCyan).Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Maps))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

func formatRelativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
