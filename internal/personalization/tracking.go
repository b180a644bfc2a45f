package personalization

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	hrefPattern    = regexp.MustCompile(`(?i)(href\s*=\s*)(["'])(https?://[^"']+)(["'])`)
	bodyEndPattern = regexp.MustCompile(`(?i)</body\s*>`)
)

// OpenURL is the open-tracking pixel URL for a send record.
func OpenURL(baseURL string, recordID uuid.UUID) string {
	return fmt.Sprintf("%s/track/open/%s", strings.TrimRight(baseURL, "/"), recordID)
}

// ClickURL routes target through the click-tracking endpoint for a send record.
func ClickURL(baseURL string, recordID uuid.UUID, target string) string {
	return fmt.Sprintf("%s/track/click/%s?url=%s", strings.TrimRight(baseURL, "/"), recordID, url.QueryEscape(target))
}

// Decorate rewrites absolute http(s) links to go through click tracking and adds an
// invisible open-tracking pixel, before </body> when present and appended otherwise.
func Decorate(htmlBody, baseURL string, recordID uuid.UUID) string {
	trackingPrefix := strings.TrimRight(baseURL, "/") + "/track/"

	rewritten := hrefPattern.ReplaceAllStringFunc(htmlBody, func(match string) string {
		parts := hrefPattern.FindStringSubmatch(match)
		// Attribute values are HTML-escaped; the redirect target must not be.
		target := html.UnescapeString(parts[3])
		if strings.HasPrefix(target, trackingPrefix) {
			return match
		}
		return parts[1] + parts[2] + html.EscapeString(ClickURL(baseURL, recordID, target)) + parts[4]
	})

	pixel := fmt.Sprintf(
		`<img src="%s" width="1" height="1" style="display:none;" alt="" />`,
		OpenURL(baseURL, recordID),
	)

	locs := bodyEndPattern.FindAllStringIndex(rewritten, -1)
	if len(locs) == 0 {
		return rewritten + pixel
	}
	last := locs[len(locs)-1]
	return rewritten[:last[0]] + pixel + rewritten[last[0]:]
}
