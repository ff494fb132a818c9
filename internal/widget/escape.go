package widget

import (
	"net/url"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Esc escapes the five HTML metacharacters so caller-supplied text is
// safe inside element content and attribute values. Every piece of
// external text in the generated box goes through here before
// concatenation.
func Esc(s string) string {
	if s == "" {
		return ""
	}
	return htmlEscaper.Replace(s)
}

// SafeURL validates a candidate href. Exactly "#" passes through,
// mailto links pass with the recipient escaped and any query string
// stripped, and absolute http/https URLs pass unchanged. Everything
// else (javascript:, data:, malformed, empty) is rejected.
func SafeURL(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	if raw == "#" {
		return "#", true
	}
	if strings.HasPrefix(raw, "mailto:") {
		addr := raw[len("mailto:"):]
		if i := strings.IndexByte(addr, '?'); i >= 0 {
			addr = addr[:i]
		}
		return "mailto:" + Esc(addr), true
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	scheme := strings.ToLower(parsed.Scheme)
	if (scheme != "http" && scheme != "https") || parsed.Host == "" {
		return "", false
	}
	return raw, true
}
