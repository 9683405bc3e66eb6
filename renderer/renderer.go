// Package renderer turns tracker records into markdown pages.
//
// Table pages are built with github.com/nao1215/markdown, card pages
// (piggybanks, notes) are text/template files embedded from templates/.
package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

// Page holds what every page needs besides its records.
type Page struct {
	Currency fintrack.Currency // display currency
	Today    date.Date
}

// Money formats a base currency amount in the display currency.
func (p Page) Money(a fintrack.Amount) string { return p.Currency.Format(a) }

// funcs are the helpers available in every template.
func (p Page) funcs() template.FuncMap {
	return template.FuncMap{
		"money": p.Money,
		"bar":   Bar,
		"glyph": func(i fintrack.Icon) string { return i.Glyph() },
	}
}

// renderTemplate renders a main template that depends on several partials.
func (p Page) renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(p.funcs()).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

const barWidth = 20

// Bar draws a progress bar for a percentage, capped at 100%.
func Bar(p fintrack.Percent) string {
	filled := int(float64(p.Cap()) / 100 * barWidth)
	filled = max(filled, 0)
	return "`" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + "`"
}

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}
