package widget

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscReplacesAllMetacharacters(t *testing.T) {
	assert.Equal(t, "&amp;&lt;&gt;&quot;&#39;", Esc(`&<>"'`))
	assert.Equal(t, "Tom &amp; Jerry &lt;b&gt;", Esc("Tom & Jerry <b>"))
}

func TestEscEmptyInput(t *testing.T) {
	assert.Equal(t, "", Esc(""))
}

func TestEscDoesNotDoubleEscapeInOnePass(t *testing.T) {
	// The replacements run simultaneously, so the ampersands produced
	// by one entity never feed another.
	assert.Equal(t, "&amp;lt;", Esc("&lt;"))
}

func TestEscOutputNeverContainsRawMetacharacters(t *testing.T) {
	inputs := []string{
		`<img src=x onerror=alert(1)>`,
		`"quoted" & 'single'`,
		"plain text",
		"a<b>c\"d'e&f",
	}
	for _, in := range inputs {
		out := Esc(in)
		assert.NotContains(t, out, "<")
		assert.NotContains(t, out, ">")
		assert.NotContains(t, out, `"`)
		assert.NotContains(t, out, "'")
		for i := 0; i < len(out); i++ {
			if out[i] != '&' {
				continue
			}
			rest := out[i:]
			ok := strings.HasPrefix(rest, "&amp;") ||
				strings.HasPrefix(rest, "&lt;") ||
				strings.HasPrefix(rest, "&gt;") ||
				strings.HasPrefix(rest, "&quot;") ||
				strings.HasPrefix(rest, "&#39;")
			assert.True(t, ok, "unescaped ampersand in %q", out)
		}
	}
}

func TestSafeURLAllowsAnchorAndHTTP(t *testing.T) {
	for _, raw := range []string{"#", "https://x.com", "http://x.com", "https://x.com/path?a=1"} {
		got, ok := SafeURL(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, raw, got)
	}
}

func TestSafeURLMailto(t *testing.T) {
	got, ok := SafeURL("mailto:a@b.com")
	assert.True(t, ok)
	assert.Equal(t, "mailto:a@b.com", got)

	got, ok = SafeURL("mailto:a@b.com?subject=hi&body=x")
	assert.True(t, ok)
	assert.Equal(t, "mailto:a@b.com", got)

	got, ok = SafeURL(`mailto:a"onmouseover=x@b.com`)
	assert.True(t, ok)
	assert.Equal(t, "mailto:a&quot;onmouseover=x@b.com", got)
}

func TestSafeURLRejectsUnsafeSchemes(t *testing.T) {
	unsafe := []string{
		"javascript:alert(1)",
		"JAVASCRIPT:alert(1)",
		"JaVaScRiPt:alert(1)",
		" javascript:alert(1)",
		"data:text/html,<script>alert(1)</script>",
		"DATA:text/html,x",
		"ftp://x.com",
		"file:///etc/passwd",
		"//x.com",
		"not a url",
		"",
	}
	for _, raw := range unsafe {
		got, ok := SafeURL(raw)
		assert.False(t, ok, raw)
		assert.Equal(t, "", got)
	}
}
