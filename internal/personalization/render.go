// Package personalization renders campaign templates for a single recipient and
// decorates the resulting HTML with open and click tracking.
//
// Every function in this package is pure: the same inputs always produce the same
// output, so a retried send carries byte-identical content.
package personalization

import (
	"html"
	"regexp"
	"strings"

	queueDomain "github.com/allisson/leadmail/internal/queue/domain"
)

// Placeholders lists the tokens Render substitutes.
var Placeholders = []string{"[name]", "[email]", "[company]", "[phone]", "[status]"}

// Render substitutes the recipient placeholders in template. Missing fields become
// empty strings and unknown bracket tokens are left as they are. Substitution is a
// single pass, so values that contain placeholders are not expanded again.
func Render(template string, recipient queueDomain.Recipient) string {
	replacer := strings.NewReplacer(
		"[name]", recipient.Name,
		"[email]", recipient.Email,
		"[company]", recipient.Company,
		"[phone]", recipient.Phone,
		"[status]", recipient.Status,
	)
	return replacer.Replace(template)
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// PlainText derives a text-only body from HTML by stripping tags and decoding entities.
func PlainText(htmlBody string) string {
	return strings.TrimSpace(html.UnescapeString(tagPattern.ReplaceAllString(htmlBody, "")))
}
