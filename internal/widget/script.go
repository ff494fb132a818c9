package widget

// GenerateScript emits the companion behavior script for the box. The
// caller wraps it in script tags at the site-template level; the HTML
// itself never carries it because the CMS strips inline scripts from
// post bodies.
//
// The checkbox tracking block is included only in interactive mode.
// The response-form block is always present: the form renders
// unconditionally, and both submission outcomes collapse to the same
// thank-you state.
func GenerateScript(opts Options) string {
	script := "(function() {\n" +
		"  var box = document.querySelector('.civic-action-box');\n" +
		"  if (!box) return;\n"

	if opts.InteractiveCheckboxes {
		script += trackingBlock
	}
	script += responseBlock +
		"})();\n"
	return script
}

const trackingBlock = `  var checks = box.querySelectorAll('.civic-checkbox');
  checks.forEach(function(cb) {
    cb.addEventListener('change', function() {
      if (typeof gtag !== 'undefined') {
        gtag('event', cb.checked ? 'civic_action_taken' : 'civic_action_untaken', {
          action_label: cb.getAttribute('data-action'),
          action_detail: cb.getAttribute('data-label'),
          article_url: window.location.href
        });
      }
    });
  });
`

const responseBlock = `  var submit = box.querySelector('.civic-response-submit');
  var message = box.querySelector('.civic-response-message');
  var email = box.querySelector('.civic-response-email');
  var fields = box.querySelector('.civic-response-fields');
  var thanks = box.querySelector('.civic-response-thanks');
  if (submit && message) {
    submit.addEventListener('click', function(e) {
      e.preventDefault();
      var text = message.value.trim();
      if (!text) return;
      var payload = {
        message: text,
        article_url: window.location.href,
        article_title: document.title
      };
      if (email && email.value) payload.email = email.value;
      var done = function() {
        if (fields) fields.style.display = 'none';
        if (thanks) thanks.style.display = 'block';
      };
      fetch('` + ResponseEndpoint + `', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify(payload)
      }).then(done).catch(done);
    });
  }
`
