package widget

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateScriptInteractive(t *testing.T) {
	script := GenerateScript(Options{InteractiveCheckboxes: true})

	assert.Contains(t, script, "civic_action_taken")
	assert.Contains(t, script, "civic_action_untaken")
	assert.Contains(t, script, "gtag")
	assert.Contains(t, script, ResponseEndpoint)
	assert.Contains(t, script, "civic-response-submit")
}

func TestGenerateScriptStatic(t *testing.T) {
	script := GenerateScript(Options{InteractiveCheckboxes: false})

	assert.NotContains(t, script, "civic_action_taken")
	assert.NotContains(t, script, "civic_action_untaken")
	assert.NotContains(t, script, "civic-checkbox")
	// The response-form binding is unconditional.
	assert.Contains(t, script, ResponseEndpoint)
	assert.Contains(t, script, "civic-response-submit")
	assert.Contains(t, script, "civic-response-message")
	assert.Contains(t, script, "civic-response-thanks")
}

func TestGenerateScriptIsPlainBody(t *testing.T) {
	for _, interactive := range []bool{true, false} {
		script := GenerateScript(Options{InteractiveCheckboxes: interactive})
		assert.NotContains(t, script, "<script")
		assert.NotContains(t, script, "</script")
		assert.True(t, strings.HasPrefix(script, "(function() {"))
	}
}

func TestGenerateScriptGuardsMissingAnalytics(t *testing.T) {
	script := GenerateScript(Options{InteractiveCheckboxes: true})
	assert.Contains(t, script, "typeof gtag !== 'undefined'")
}
