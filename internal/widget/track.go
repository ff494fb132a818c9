package widget

import (
	"regexp"
	"strings"
)

const (
	utmSource   = "planet_detroit"
	utmMedium   = "civic_action_box"
	utmCampaign = "civic_action"

	maxSlugLen = 50
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// UTMSlug turns a human-readable label into a stable utm_content
// token: lowercase, runs of anything outside [a-z0-9] collapse to a
// single underscore, trimmed and capped at 50 characters.
func UTMSlug(s string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(s), "_")
	slug = strings.Trim(slug, "_")
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
	}
	return slug
}

// TrackLink validates a URL and appends the campaign UTM parameters.
// Anchor-only and mailto targets pass through untagged since they are
// not outbound engagement clicks.
func TrackLink(rawURL, contentLabel string) (string, bool) {
	safe, ok := SafeURL(rawURL)
	if !ok {
		return "", false
	}
	if safe == "#" || strings.HasPrefix(safe, "mailto:") {
		return safe, true
	}
	sep := "?"
	if strings.Contains(safe, "?") {
		sep = "&"
	}
	return safe + sep +
		"utm_source=" + utmSource +
		"&utm_medium=" + utmMedium +
		"&utm_campaign=" + utmCampaign +
		"&utm_content=" + UTMSlug(contentLabel), true
}
