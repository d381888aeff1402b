package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Box drawing characters
const (
	TopLeft     = "╭"
	TopRight    = "╮"
	BottomLeft  = "╰"
	BottomRight = "╯"
	Horizontal  = "─"
	Vertical    = "│"
	LeftT       = "├"
	RightT      = "┤"
	TopT        = "┬"
	BottomT     = "┴"
	Cross       = "┼"
)

// Color palette
const (
	ColorBorder = "240"
	ColorHeader = "252"
	ColorKey    = "81"
	ColorSize   = "252"
	ColorTime   = "245"
	ColorBucket = "214"
	ColorOK     = "82"
	ColorWarn   = "214"
	ColorFail   = "203"
	ColorMuted  = "240"
	ColorHint   = "245"
)

// Shared styles
var (
	BorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHeader))
	KeyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorKey))
	SizeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSize))
	TimeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTime))
	BucketStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBucket))
	OKStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOK))
	WarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarn))
	FailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFail))
	MutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	HintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHint))
)

// padRight pads a string to the specified display width using runewidth
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return runewidth.Truncate(s, width, "...")
	}
	return s + strings.Repeat(" ", width-sw)
}

// padToWidth pads a line to the full content width, truncating if needed
func padToWidth(s string, width int) string {
	return padRight(s, width)
}
