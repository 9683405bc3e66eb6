package renderer

import (
	"bytes"

	"github.com/etnz/fintrack/docs"
	md "github.com/nao1215/markdown"
)

// TopicsMarkdown renders the documentation index.
func TopicsMarkdown(summaries []docs.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Topics")
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{md.Code(s.Topic), s.Synopsis})
	}
	doc.Table(md.TableSet{
		Header: []string{"Topic", "About"},
		Rows:   rows,
	})
	doc.PlainText("Read topics with `ft topic <topic>...`, or all of them with `ft topic -all`.")
	return doc.String()
}
