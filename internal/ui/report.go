package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xbmc/sync-addon-metadata-translations/pkg/samt"
)

// Reporter renders run results for humans. Colors only apply in
// interactive mode so piped output stays plain.
type Reporter struct {
	colored bool
}

// NewReporter creates a reporter that decorates output when stdout is
// an interactive terminal.
func NewReporter() *Reporter {
	return NewReporterWithColor(IsInteractive())
}

// NewReporterWithColor creates a reporter with explicit color control.
func NewReporterWithColor(colored bool) *Reporter {
	return &Reporter{colored: colored}
}

// RenderSync summarizes what a sync run changed, one line per addon.
func (r *Reporter) RenderSync(result *samt.Result) string {
	var lines []string
	for i := range result.Packages {
		pkg := &result.Packages[i]
		switch {
		case pkg.Err != nil:
			lines = append(lines, r.paint(ErrorStyle, fmt.Sprintf("%s %s: %v", SymbolCross, pkg.Path, pkg.Err)))
		case pkg.Changed():
			lines = append(lines, r.paint(SuccessStyle, fmt.Sprintf("%s %s (%s)", SymbolCheck, pkg.Path, changeSummary(pkg, "updated"))))
		default:
			lines = append(lines, r.paint(MutedStyle, fmt.Sprintf("%s %s (up to date)", SymbolCheck, pkg.Path)))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderCheck summarizes which addons are out of sync, one line per
// addon plus a closing count.
func (r *Reporter) RenderCheck(result *samt.Result) string {
	var lines []string
	outOfSync := 0
	for i := range result.Packages {
		pkg := &result.Packages[i]
		switch {
		case pkg.Err != nil:
			lines = append(lines, r.paint(ErrorStyle, fmt.Sprintf("%s %s: %v", SymbolCross, pkg.Path, pkg.Err)))
		case pkg.Changed():
			outOfSync++
			lines = append(lines, r.paint(WarningStyle, fmt.Sprintf("%s %s (%s)", SymbolCross, pkg.Path, changeSummary(pkg, "out of sync"))))
		default:
			lines = append(lines, r.paint(SuccessStyle, fmt.Sprintf("%s %s (in sync)", SymbolCheck, pkg.Path)))
		}
	}

	total := len(result.Packages)
	switch {
	case outOfSync > 0:
		lines = append(lines, fmt.Sprintf("%d of %d %s out of sync", outOfSync, total, pluralize("addon", total)))
	case result.Skipped() == 0:
		lines = append(lines, fmt.Sprintf("%d %s in sync", total, pluralize("addon", total)))
	}

	return strings.Join(lines, "\n")
}

func (r *Reporter) paint(style lipgloss.Style, s string) string {
	if !r.colored {
		return s
	}
	return style.Render(s)
}

// changeSummary lists what changed in one addon, for example
// "addon.xml updated, 2 po files updated".
func changeSummary(pkg *samt.PackageResult, verb string) string {
	var parts []string
	if pkg.AddonXMLChanged {
		parts = append(parts, "addon.xml "+verb)
	}
	if n := len(pkg.ChangedPOFiles); n > 0 {
		parts = append(parts, fmt.Sprintf("%d %s %s", n, pluralize("po file", n), verb))
	}
	return strings.Join(parts, ", ")
}

func pluralize(noun string, n int) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
