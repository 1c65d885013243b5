package render

import (
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Color styles shared by renderers
var (
	sectionHeaderStyle = color.New(color.Bold, color.FgHiWhite)
	nameStyle          = color.New(color.FgWhite, color.Bold)
	chainStyle         = color.New(color.FgCyan)
	urlStyle           = color.New(color.FgBlue)
	faintStyle         = color.New(color.Faint)
	okStyle            = color.New(color.FgGreen)
	failStyle          = color.New(color.FgRed)
	warnStyle          = color.New(color.FgYellow)
)

const secretMask = "********"

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return warnStyle.Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	return failStyle.Sprintf("❌ %s", message)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return okStyle.Sprintf("✅ %s", message)
}

// title capitalizes a word for display, e.g. "optimism" → "Optimism"
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// maskSecret hides secret inside s; an empty secret leaves s unchanged
func maskSecret(s, secret string) string {
	if secret == "" {
		return s
	}
	return strings.ReplaceAll(s, secret, secretMask)
}

// newTable returns a borderless left-aligned table writer
func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateRows = false
	t.Style().Box = table.BoxStyle{PaddingRight: "   "}
	t.Style().Format.Header = text.FormatUpper
	return t
}
