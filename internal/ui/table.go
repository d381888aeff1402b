package ui

import (
	"fmt"
	"strings"

	pkgtypes "github.com/vietdv277/stratus/pkg/types"
)

// Column widths for the object table
var objectColumnWidths = []int{52, 10, 20, 16}

// PrintObjectTable prints bucket objects in a styled box table
func PrintObjectTable(objects []pkgtypes.Object) {
	headers := []string{"Key", "Size", "Last Modified", "Cache"}

	var sb strings.Builder

	// Top border
	sb.WriteString(BorderStyle.Render(TopLeft))
	for i, w := range objectColumnWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(objectColumnWidths)-1 {
			sb.WriteString(BorderStyle.Render(TopT))
		}
	}
	sb.WriteString(BorderStyle.Render(TopRight))
	sb.WriteString("\n")

	// Header row
	sb.WriteString(BorderStyle.Render(Vertical))
	for i, h := range headers {
		cell := " " + padRight(h, objectColumnWidths[i]) + " "
		sb.WriteString(HeaderStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))
	}
	sb.WriteString("\n")

	// Header separator
	sb.WriteString(BorderStyle.Render(LeftT))
	for i, w := range objectColumnWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(objectColumnWidths)-1 {
			sb.WriteString(BorderStyle.Render(Cross))
		}
	}
	sb.WriteString(BorderStyle.Render(RightT))
	sb.WriteString("\n")

	// Data rows
	for _, obj := range objects {
		sb.WriteString(BorderStyle.Render(Vertical))

		cells := []struct {
			text  string
			style func(string) string
		}{
			{obj.Key, func(s string) string { return KeyStyle.Render(s) }},
			{HumanSize(obj.Size), func(s string) string { return SizeStyle.Render(s) }},
			{obj.LastModified.Format("2006-01-02 15:04:05"), func(s string) string { return TimeStyle.Render(s) }},
			{cacheHint(obj.Key), func(s string) string { return MutedStyle.Render(s) }},
		}

		for i, c := range cells {
			cell := " " + padRight(c.text, objectColumnWidths[i]) + " "
			sb.WriteString(c.style(cell))
			sb.WriteString(BorderStyle.Render(Vertical))
		}
		sb.WriteString("\n")
	}

	// Bottom border
	sb.WriteString(BorderStyle.Render(BottomLeft))
	for i, w := range objectColumnWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(objectColumnWidths)-1 {
			sb.WriteString(BorderStyle.Render(BottomT))
		}
	}
	sb.WriteString(BorderStyle.Render(BottomRight))
	sb.WriteString("\n")

	fmt.Print(sb.String())
	fmt.Printf("  %d objects\n", len(objects))
}

// cacheHint mirrors the deploy-time cache-control rule for display
func cacheHint(key string) string {
	if strings.HasPrefix(key, "assets/") {
		return "immutable"
	}
	return "no-cache"
}

// HumanSize formats a byte count for table display
func HumanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
