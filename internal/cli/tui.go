package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/graphml2gv/pkg/graphml"
)

var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	tableHeadStyle  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	tableRowStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	tableKindStyle  = lipgloss.NewStyle().Foreground(colorYellow)
	tableFocusStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
)

// =============================================================================
// DiagnosticsModel - Interactive diagnostics browser
// =============================================================================

// DiagnosticsModel is the bubbletea model listing the diagnostics of one
// converted document.
type DiagnosticsModel struct {
	Title  string
	Diags  []graphml.Diagnostic
	Cursor int
	Height int
	Offset int
}

// NewDiagnosticsModel creates a diagnostics model titled after the input.
func NewDiagnosticsModel(title string, diags []graphml.Diagnostic) DiagnosticsModel {
	return DiagnosticsModel{
		Title:  title,
		Diags:  diags,
		Height: 15,
	}
}

func (m DiagnosticsModel) Init() tea.Cmd {
	return nil
}

func (m DiagnosticsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Diags)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if n := len(m.Diags); n > 0 {
				m.Cursor = n - 1
				m.Offset = max(0, n-m.Height)
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m DiagnosticsModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	if len(m.Diags) == 0 {
		b.WriteString(listDimStyle.Render("  no diagnostics"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Diags))
	b.WriteString(diagnosticsTable(m.Diags[m.Offset:end], m.Cursor-m.Offset).Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Diags))))

	return b.String()
}

// diagnosticsTable lays out diags as a table. Row focus is highlighted;
// pass -1 for none.
func diagnosticsTable(diags []graphml.Diagnostic, focus int) *table.Table {
	rows := make([][]string, 0, len(diags))
	for i, d := range diags {
		cursor := "  "
		if i == focus {
			cursor = "▸ "
		}
		line := "-"
		if d.Line > 0 {
			line = strconv.Itoa(d.Line)
		}
		rows = append(rows, []string{cursor, line, string(d.Kind), d.Message})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Line", "Kind", "Message").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return tableHeadStyle
			case row == focus:
				return tableFocusStyle
			case col == 2:
				return tableKindStyle
			case col == 1:
				return listDimStyle
			}
			return tableRowStyle
		})
}
