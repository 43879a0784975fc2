package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/frat/internal/cli/formatter"
	"github.com/alexanderramin/frat/internal/domain"
	"github.com/alexanderramin/frat/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// sideBySideMinWidth is the terminal width below which the summary panel
// is stacked under the checklist.
const sideBySideMinWidth = 100

// chromeLines is the number of lines taken by the title and footer.
const chromeLines = 6

// checklistRow is one line of the checklist: a section heading or a factor.
type checklistRow struct {
	heading  domain.Category
	factorID string
}

func (r checklistRow) isFactor() bool { return r.factorID != "" }

// checklistModel is the bubbletea Model for the interactive checklist.
type checklistModel struct {
	svc  service.AssessmentService
	keys checklistKeyMap
	help help.Model

	rows   []checklistRow
	cursor int // index into rows; always a factor row
	offset int // first visible row when the list is windowed

	width  int
	height int

	status   string
	quitting bool
}

func newChecklistModel(svc service.AssessmentService) checklistModel {
	m := checklistModel{
		svc:  svc,
		keys: defaultChecklistKeyMap(),
		help: help.New(),
	}
	for _, g := range svc.Groups() {
		m.rows = append(m.rows, checklistRow{heading: g.Category})
		for _, f := range g.Factors {
			m.rows = append(m.rows, checklistRow{factorID: f.ID})
		}
	}
	m.cursor = m.nextFactor(-1, 1)
	return m
}

// nextFactor returns the first factor row after from in direction dir, or
// from itself when there is none.
func (m checklistModel) nextFactor(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.rows); i += dir {
		if m.rows[i].isFactor() {
			return i
		}
	}
	if from < 0 {
		return 0
	}
	return from
}

// groupStart returns the first factor row of the section dir sections away.
func (m checklistModel) groupStart(dir int) int {
	headings := make([]int, 0, len(domain.Categories))
	current := 0
	for i, r := range m.rows {
		if !r.isFactor() {
			headings = append(headings, i)
		}
		if i == m.cursor {
			current = len(headings) - 1
		}
	}
	if len(headings) == 0 {
		return m.cursor
	}
	target := (current + dir + len(headings)) % len(headings)
	return m.nextFactor(headings[target], 1)
}

// focusedID returns the id of the factor under the cursor.
func (m checklistModel) focusedID() string {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return ""
	}
	return m.rows[m.cursor].factorID
}

func (m checklistModel) Init() tea.Cmd { return nil }

func (m checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scrollToCursor()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m checklistModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor = m.nextFactor(m.cursor, -1)
	case key.Matches(msg, m.keys.Down):
		m.cursor = m.nextFactor(m.cursor, 1)
	case key.Matches(msg, m.keys.NextGroup):
		m.cursor = m.groupStart(1)
	case key.Matches(msg, m.keys.PrevGroup):
		m.cursor = m.groupStart(-1)
	case key.Matches(msg, m.keys.Toggle):
		if err := m.svc.Toggle(ctx, m.focusedID()); err != nil {
			m.status = err.Error()
		}
	case key.Matches(msg, m.keys.Pilot):
		m.svc.SetPilotType(ctx, m.svc.Mode().PilotType.Next())
	case key.Matches(msg, m.keys.Experience):
		m.svc.SetExperienceBand(ctx, m.svc.Mode().ExperienceBand.Next())
	case key.Matches(msg, m.keys.Reset):
		m.svc.ResetAll(ctx)
		m.status = "Form reset."
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.scrollToCursor()
	return m, nil
}

// visibleRows is how many checklist rows fit on screen; 0 means unlimited.
func (m checklistModel) visibleRows() int {
	if m.height <= 0 {
		return 0
	}
	avail := m.height - chromeLines
	if m.width < sideBySideMinWidth {
		// Summary panel is stacked below the list.
		avail -= lipgloss.Height(m.summaryPanel())
	}
	return max(avail, 3)
}

func (m *checklistModel) scrollToCursor() {
	visible := m.visibleRows()
	if visible == 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
		// Keep the section heading in view when jumping to its first factor.
		if m.offset > 0 && !m.rows[m.offset-1].isFactor() {
			m.offset--
		}
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m checklistModel) summaryPanel() string {
	return formatter.RenderBox("Risk Assessment", strings.TrimRight(formatter.FormatSummary(m.svc.Report()), "\n"))
}

func (m checklistModel) renderRow(i int, byID map[string]domain.Factor) string {
	r := m.rows[i]
	if !r.isFactor() {
		return formatter.StyleHeader.Render(formatter.CategoryIcon(r.heading) + " " + strings.ToUpper(r.heading.Title()))
	}

	def := byID[r.factorID]

	cursor := "  "
	label := formatter.StyleFg.Render(def.Label)
	if i == m.cursor {
		cursor = formatter.StyleGreen.Render("▸ ")
		label = formatter.StyleBold.Render(def.Label)
	}
	return fmt.Sprintf("%s%s %s  %s", cursor, formatter.Checkbox(def.Active), label, formatter.WeightBadge(def.Weight))
}

func (m checklistModel) checklistColumn() string {
	start, end := 0, len(m.rows)
	if visible := m.visibleRows(); visible > 0 && visible < len(m.rows) {
		start = min(m.offset, len(m.rows)-visible)
		end = start + visible
	}

	byID := make(map[string]domain.Factor, len(m.rows))
	for _, f := range m.svc.Factors() {
		byID[f.ID] = f
	}

	lines := make([]string, 0, end-start+2)
	if start > 0 {
		lines = append(lines, formatter.Dim("  ↑ more"))
	}
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(i, byID))
	}
	if end < len(m.rows) {
		lines = append(lines, formatter.Dim("  ↓ more"))
	}
	return strings.Join(lines, "\n")
}

func (m checklistModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("FLIGHT RISK ASSESSMENT TOOL") + "\n")
	b.WriteString(formatter.Dim("Check the applicable factors to assess your flight risk level") + "\n\n")

	list := m.checklistColumn()
	panel := m.summaryPanel()
	if m.width == 0 || m.width >= sideBySideMinWidth {
		b.WriteString(formatter.JoinColumns(4, list, panel))
	} else {
		b.WriteString(list + "\n\n" + panel)
	}
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(formatter.Dim(m.status) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
