package usecase

import (
	"fmt"
	"strings"

	"github.com/jaytaylor/html2text"
	"github.com/m-mizutani/relwatch/pkg/domain/model"
)

// stripCodeFences removes markdown fenced-code-block delimiters that the
// summarizer sometimes wraps its HTML output in. The delimiters are not
// valid in the downstream rendering context.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```html", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// htmlToPlainText reduces rich HTML to a text-only rendition for the
// text/plain part. Falls back to the raw input when the reduction fails,
// which keeps the notification deliverable at the cost of markup noise.
func htmlToPlainText(s string) string {
	text, err := html2text.FromString(s, html2text.Options{TextOnly: false})
	if err != nil {
		return s
	}
	return text
}

// buildNotification assembles the structured message for one new release.
// summary is the enrichment output (HTML, already fence-stripped).
func buildNotification(nr model.NewRelease, summary string) *model.Notification {
	rel := nr.Release

	subject := fmt.Sprintf("New GitHub Release: %s/%s - %s", nr.Owner, nr.Repo, rel.DisplayName())

	textBody := fmt.Sprintf(`New GitHub Release: %s (%s)
Repository: %s/%s
Published at: %s
URL: %s

Release Analysis:
%s
`, rel.DisplayName(), rel.TagName, nr.Owner, nr.Repo, rel.PublishedAt, rel.HTMLURL, htmlToPlainText(summary))

	htmlBody := fmt.Sprintf(`<html>
<body>
  <h1>New GitHub Release: %s</h1>
  <p><strong>Repository:</strong> <a href="https://github.com/%s/%s">%s/%s</a></p>
  <p><strong>Tag:</strong> %s</p>
  <p><strong>Published at:</strong> %s</p>
  <p><strong>URL:</strong> <a href="%s">%s</a></p>

  <hr>
  <h2>Release Analysis</h2>
  %s
</body>
</html>
`, rel.DisplayName(), nr.Owner, nr.Repo, nr.Owner, nr.Repo, rel.TagName, rel.PublishedAt, rel.HTMLURL, rel.HTMLURL, summary)

	return &model.Notification{
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
		Format:   model.FormatMultipartAlternative,
	}
}
