package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/vietdv277/stratus/internal/config"
)

const (
	listHeight       = 8
	detailLabelWidth = 14
	minWidth         = 60
	maxWidth         = 120
)

// contextItem holds display data for a single context entry.
type contextItem struct {
	name    string
	ctx     *config.Context
	current bool
}

// ContextModel is the bubbletea model for interactive context selection.
type ContextModel struct {
	items        []contextItem
	filtered     []contextItem
	cursor       int
	offset       int
	search       string
	selected     string
	quitting     bool
	cancelled    bool
	termWidth    int
	contentWidth int
	colWidths    []int // [Name, Bucket, Region]
}

func newContextModel(items []contextItem) ContextModel {
	m := ContextModel{
		items:     items,
		filtered:  items,
		termWidth: 80,
	}
	m.calculateWidths()
	return m
}

func (m *ContextModel) calculateWidths() {
	m.contentWidth = m.termWidth - 2
	if m.contentWidth < minWidth {
		m.contentWidth = minWidth
	}
	if m.contentWidth > maxWidth {
		m.contentWidth = maxWidth
	}

	// Compute minimum widths from actual content
	bucketW := 12
	regionW := 10
	for _, item := range m.items {
		region := item.ctx.Region
		if region == "" {
			region = "-"
		}
		bucketW = max(bucketW, runewidth.StringWidth(item.ctx.Bucket))
		regionW = max(regionW, runewidth.StringWidth(region))
	}

	// cursor+marker(3) + name(dynamic) + sp(2) + bucket + sp(2) + region
	fixedW := 3 + 2 + bucketW + 2 + regionW
	nameW := m.contentWidth - fixedW
	if nameW < 10 {
		nameW = 10
	}

	m.colWidths = []int{nameW, bucketW, regionW}
}

// Init implements tea.Model.
func (m ContextModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model.
func (m ContextModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.calculateWidths()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.filtered) > 0 {
				m.selected = m.filtered[m.cursor].name
				m.quitting = true
				return m, tea.Quit
			}

		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}

		case tea.KeyDown:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				if m.cursor >= m.offset+listHeight {
					m.offset = m.cursor - listHeight + 1
				}
			}

		case tea.KeyBackspace:
			if len(m.search) > 0 {
				m.search = m.search[:len(m.search)-1]
				m.filterContexts()
			}

		case tea.KeyRunes:
			m.search += string(msg.Runes)
			m.filterContexts()
		}
	}

	return m, nil
}

func (m *ContextModel) filterContexts() {
	if m.search == "" {
		m.filtered = m.items
	} else {
		query := strings.ToLower(m.search)
		m.filtered = nil
		for _, item := range m.items {
			if strings.Contains(strings.ToLower(item.name), query) ||
				strings.Contains(strings.ToLower(item.ctx.Bucket), query) {
				m.filtered = append(m.filtered, item)
			}
		}
	}
	if m.cursor >= len(m.filtered) {
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		} else {
			m.cursor = 0
		}
	}
	m.offset = 0
}

// View implements tea.Model.
func (m ContextModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	w := m.contentWidth

	// Top border
	sb.WriteString(BorderStyle.Render(TopLeft + strings.Repeat(Horizontal, w) + TopRight))
	sb.WriteString("\n")

	// Search input
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(KeyStyle.Render(padToWidth(" > "+m.search, w)))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	sb.WriteString(m.blankRow())

	// Context list
	visibleEnd := m.offset + listHeight
	if visibleEnd > len(m.filtered) {
		visibleEnd = len(m.filtered)
	}
	for i := m.offset; i < visibleEnd; i++ {
		sb.WriteString(m.renderRow(i))
	}
	for i := visibleEnd; i < m.offset+listHeight; i++ {
		sb.WriteString(m.blankRow())
	}

	sb.WriteString(m.blankRow())

	// Separator
	sb.WriteString(BorderStyle.Render(LeftT + strings.Repeat(Horizontal, w) + RightT))
	sb.WriteString("\n")

	// Details panel
	sb.WriteString(m.renderDetailsPanel())

	// Bottom border
	sb.WriteString(BorderStyle.Render(BottomLeft + strings.Repeat(Horizontal, w) + BottomRight))
	sb.WriteString("\n")

	// Status bar
	sb.WriteString(m.renderStatusBar())

	return sb.String()
}

func (m ContextModel) blankRow() string {
	return BorderStyle.Render(Vertical) + strings.Repeat(" ", m.contentWidth) + BorderStyle.Render(Vertical) + "\n"
}

func (m ContextModel) renderRow(idx int) string {
	item := m.filtered[idx]
	w := m.contentWidth

	var line strings.Builder
	plainWidth := 0

	// 3-char prefix: space + cursor(>) + current-marker(*)
	cursor := " "
	if idx == m.cursor {
		cursor = ">"
	}
	marker := " "
	if item.current {
		marker = "*"
	}
	line.WriteString(" " + cursor + marker)
	plainWidth += 3

	nameText := padRight(item.name, m.colWidths[0])
	if item.current {
		line.WriteString(OKStyle.Render(nameText))
	} else {
		line.WriteString(KeyStyle.Render(nameText))
	}
	line.WriteString("  ")
	plainWidth += m.colWidths[0] + 2

	line.WriteString(BucketStyle.Render(padRight(item.ctx.Bucket, m.colWidths[1])))
	line.WriteString("  ")
	plainWidth += m.colWidths[1] + 2

	region := item.ctx.Region
	if region == "" {
		region = "-"
	}
	line.WriteString(MutedStyle.Render(padRight(region, m.colWidths[2])))
	plainWidth += m.colWidths[2]

	if plainWidth < w {
		line.WriteString(strings.Repeat(" ", w-plainWidth))
	}

	return BorderStyle.Render(Vertical) + line.String() + BorderStyle.Render(Vertical) + "\n"
}

func (m ContextModel) renderDetailsPanel() string {
	var sb strings.Builder
	w := m.contentWidth

	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(HeaderStyle.Render(padToWidth(" Context Details", w)))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	if len(m.filtered) == 0 {
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString(MutedStyle.Render(padToWidth(" No contexts found", w)))
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString("\n")
		for range 4 {
			sb.WriteString(m.blankRow())
		}
		return sb.String()
	}

	item := m.filtered[m.cursor]

	dist := item.ctx.DistributionID
	if dist == "" {
		dist = "-"
	}
	buildDir := item.ctx.BuildDir
	if buildDir == "" {
		buildDir = "dist"
	}
	region := item.ctx.Region
	if region == "" {
		region = "-"
	}

	details := []struct {
		label string
		value string
	}{
		{"Bucket:", item.ctx.Bucket},
		{"Region:", region},
		{"Distribution:", dist},
		{"Build dir:", buildDir},
		{"Profile:", item.ctx.Profile},
	}

	for _, d := range details {
		labelText := padRight(d.label, detailLabelWidth)
		valueText := d.value
		maxValueWidth := w - 1 - detailLabelWidth
		if runewidth.StringWidth(valueText) > maxValueWidth {
			valueText = runewidth.Truncate(valueText, maxValueWidth, "...")
		}

		plainWidth := 1 + detailLabelWidth + runewidth.StringWidth(valueText)
		line := MutedStyle.Render(" "+labelText) + KeyStyle.Render(valueText)
		if plainWidth < w {
			line += strings.Repeat(" ", w-plainWidth)
		}

		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString(line)
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m ContextModel) renderStatusBar() string {
	w := m.contentWidth + 2

	countInfo := fmt.Sprintf("  %d/%d contexts", len(m.filtered), len(m.items))
	hintsPlain := "[Enter:select] [Esc:quit]"

	padding := w - runewidth.StringWidth(countInfo) - runewidth.StringWidth(hintsPlain)

	var sb strings.Builder
	sb.WriteString(countInfo)
	if padding > 0 {
		sb.WriteString(strings.Repeat(" ", padding))
	}
	sb.WriteString(HintStyle.Render(hintsPlain))
	sb.WriteString("\n")

	return sb.String()
}

// SelectContext runs the interactive context selector TUI and returns the
// selected context name. The current context is pre-highlighted.
func SelectContext(contexts map[string]*config.Context, current string) (string, error) {
	if len(contexts) == 0 {
		return "", fmt.Errorf("no contexts available")
	}

	names := make([]string, 0, len(contexts))
	for name := range contexts {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]contextItem, len(names))
	for i, name := range names {
		items[i] = contextItem{
			name:    name,
			ctx:     contexts[name],
			current: name == current,
		}
	}

	m := newContextModel(items)

	for i, item := range items {
		if item.current {
			m.cursor = i
			break
		}
	}

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("error running selector: %w", err)
	}

	result := finalModel.(ContextModel)
	if result.cancelled {
		return "", fmt.Errorf("selection cancelled")
	}

	return result.selected, nil
}
