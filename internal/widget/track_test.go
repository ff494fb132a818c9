package widget

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUTMSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Detroit City Council", "detroit_city_council"},
		{"EGLE - Air Quality", "egle_air_quality"},
		{"  spaces  everywhere  ", "spaces_everywhere"},
		{"ALL CAPS", "all_caps"},
		{"already_slugged", "already_slugged"},
		{"", ""},
		{"___", ""},
		{"100% renewable!", "100_renewable"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, UTMSlug(tc.in), "input %q", tc.in)
	}
}

func TestUTMSlugShape(t *testing.T) {
	shape := regexp.MustCompile(`^[a-z0-9_]{0,50}$`)
	inputs := []string{
		"Detroit City Council",
		strings.Repeat("long label ", 30),
		"<script>alert(1)</script>",
		"über straße",
		"",
	}
	for _, in := range inputs {
		slug := UTMSlug(in)
		assert.Regexp(t, shape, slug)
		assert.LessOrEqual(t, len(slug), 50)
	}
}

func TestTrackLinkAppendsParams(t *testing.T) {
	got, ok := TrackLink("https://x.com/page", "My Label")
	assert.True(t, ok)
	assert.Equal(t, "https://x.com/page?utm_source=planet_detroit&utm_medium=civic_action_box&utm_campaign=civic_action&utm_content=my_label", got)
}

func TestTrackLinkUsesAmpersandWhenQueryPresent(t *testing.T) {
	got, ok := TrackLink("https://x.com/page?q=1", "My Label")
	assert.True(t, ok)
	assert.True(t, strings.HasPrefix(got, "https://x.com/page?q=1&utm_source="))
	assert.Equal(t, 1, strings.Count(got, "?"))
}

func TestTrackLinkSkipsMailtoAndAnchor(t *testing.T) {
	got, ok := TrackLink("mailto:a@b.com", "label")
	assert.True(t, ok)
	assert.Equal(t, "mailto:a@b.com", got)

	got, ok = TrackLink("#", "label")
	assert.True(t, ok)
	assert.Equal(t, "#", got)
}

func TestTrackLinkRejectsInvalid(t *testing.T) {
	got, ok := TrackLink("javascript:alert(1)", "label")
	assert.False(t, ok)
	assert.Equal(t, "", got)
}

func TestTrackLinkParamNamesAppearOnce(t *testing.T) {
	got, ok := TrackLink("https://x.com/a?utm_source=other", "label")
	assert.True(t, ok)
	for _, name := range []string{"utm_medium=", "utm_campaign=", "utm_content="} {
		assert.Equal(t, 1, strings.Count(got, name))
	}
}
