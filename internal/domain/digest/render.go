package digest

import (
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/keturi/jobwatch/internal/domain"
)

var htmlTmpl = template.Must(template.New("digest").Parse(`<h2>Job search results for {{.Date}}</h2>
{{if .Postings}}<ol>
{{range .Postings}}<li><strong>{{.Title}}</strong><br>
{{.Snippet}}<br>
<a href="{{.Link}}" target="_blank">{{.Link}}</a><br>
<small>query: {{.SourceQuery}}</small></li>
{{end}}</ol>
{{else}}<p>No new results.</p>
{{end}}`))

var textTmpl = texttemplate.Must(texttemplate.New("digest").Parse(`{{len .Postings}} new result(s) for {{.Date}}.
{{range .Postings}}
* {{.Title}}
  {{.Link}}
  query: {{.SourceQuery}}
{{end}}`))

type digestData struct {
	Date     string
	Postings []domain.Posting
}

// Subject builds the digest subject line for the run date.
func Subject(now time.Time, newCount int) string {
	return fmt.Sprintf("Job search digest %s: %d new", now.UTC().Format("2006-01-02"), newCount)
}

// Render produces the HTML body and its plain-text fallback.
func Render(postings []domain.Posting, now time.Time) (htmlBody, textBody string, err error) {
	data := digestData{
		Date:     now.UTC().Format("2006-01-02"),
		Postings: postings,
	}

	var html strings.Builder
	if err := htmlTmpl.Execute(&html, data); err != nil {
		return "", "", fmt.Errorf("digest: render html: %w", err)
	}

	var text strings.Builder
	if err := textTmpl.Execute(&text, data); err != nil {
		return "", "", fmt.Errorf("digest: render text: %w", err)
	}

	return html.String(), text.String(), nil
}
