package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var labelStyle = lipgloss.NewStyle().Foreground(Blue).Bold(true)
var grayStyle = lipgloss.NewStyle().Foreground(Gray)

// BorderStr renders s in the border (cyan) colour.
func BorderStr(s string) string {
	return lipgloss.NewStyle().Foreground(Cyan).Render(s)
}

// RenderToLines renders content with 1-char horizontal padding into a
// slice of lines, each exactly innerW visual characters wide.
func RenderToLines(content string, innerW int) []string {
	rendered := lipgloss.NewStyle().Padding(0, 1).Width(innerW).Render(content)
	return strings.Split(rendered, "\n")
}

// PadLines ensures exactly targetRows lines, each innerW visual chars wide.
func PadLines(lines []string, targetRows, innerW int) []string {
	if len(lines) > targetRows {
		lines = lines[:targetRows]
	}
	emptyLine := strings.Repeat(" ", innerW)
	for len(lines) < targetRows {
		lines = append(lines, emptyLine)
	}
	for i, line := range lines {
		w := lipgloss.Width(line)
		if w < innerW {
			lines[i] = line + strings.Repeat(" ", innerW-w)
		}
	}
	return lines
}

// BuildTopBorder builds: ╭─ LeftTitle ──┬─ RightTitle ──╮
func BuildTopBorder(leftW, rightW int, leftTitle, rightTitle string) string {
	ltw := lipgloss.Width(leftTitle)
	rtw := lipgloss.Width(rightTitle)
	ld := leftW - 3 - ltw
	if ld < 0 {
		ld = 0
	}
	rd := rightW - 3 - rtw
	if rd < 0 {
		rd = 0
	}
	return BorderStr("╭─") + " " + labelStyle.Render(leftTitle) + " " +
		BorderStr(strings.Repeat("─", ld)+"┬─") + " " + labelStyle.Render(rightTitle) + " " +
		BorderStr(strings.Repeat("─", rd)+"╮")
}

// BuildMiddleBorder builds: ├─ Title ──┴────────┤
// The ┴ character is placed where the top-section vertical divider was.
func BuildMiddleBorder(totalW, leftW int, title string) string {
	tw := lipgloss.Width(title)
	totalDashes := totalW - 5 - tw
	if totalDashes < 0 {
		totalDashes = 0
	}
	junction := leftW - 3 - tw
	if junction >= 0 && junction < totalDashes {
		return BorderStr("├─") + " " + labelStyle.Render(title) + " " +
			BorderStr(strings.Repeat("─", junction)+"┴"+strings.Repeat("─", totalDashes-junction-1)+"┤")
	}
	return BorderStr("├─") + " " + labelStyle.Render(title) + " " +
		BorderStr(strings.Repeat("─", totalDashes)+"┤")
}

// BuildBottomBorder builds: ╰─ footer ──────╯
func BuildBottomBorder(totalW int, footer string) string {
	fw := lipgloss.Width(footer)
	d := totalW - 5 - fw
	if d < 0 {
		d = 0
	}
	return BorderStr("╰─") + " " + grayStyle.Render(footer) + " " +
		BorderStr(strings.Repeat("─", d)+"╯")
}
