package widget

import (
	"strconv"
	"strings"

	"github.com/planet-detroit/civic-action-api/internal/models"
)

const (
	linkColor = "#2f80c3"

	headingStyle = "font-size: 14px; font-weight: 600; margin: 0 0 8px 0; color: #333;"

	descriptionLimit = 150
)

// htmlBuilder accumulates the box markup and carries the checkbox
// flag so every list helper renders consistently.
type htmlBuilder struct {
	b           strings.Builder
	interactive bool
}

func (w *htmlBuilder) raw(s string) {
	w.b.WriteString(s)
}

func (w *htmlBuilder) sectionOpen(heading string) {
	w.raw("  <div style=\"margin-bottom: 16px;\">\n")
	w.raw("    <h4 style=\"" + headingStyle + "\">" + heading + "</h4>\n")
	if w.interactive {
		w.raw("    <ul style=\"margin: 0; padding-left: 0; font-size: 14px; list-style: none;\">\n")
	} else {
		w.raw("    <ul style=\"margin: 0; padding-left: 20px; font-size: 14px;\">\n")
	}
}

func (w *htmlBuilder) sectionClose() {
	w.raw("    </ul>\n  </div>\n")
}

// item writes one list entry. In interactive mode the body is wrapped
// in a checkbox label carrying the action identifier and a readable
// label for analytics.
func (w *htmlBuilder) item(action, label, body string) {
	w.raw("      <li style=\"margin-bottom: 8px;\">")
	if w.interactive {
		w.raw("<label style=\"display: flex; align-items: flex-start; gap: 6px; cursor: pointer;\">" +
			"<input type=\"checkbox\" class=\"civic-checkbox\" data-action=\"" + Esc(action) +
			"\" data-label=\"" + Esc(label) + "\" style=\"margin-top: 3px; cursor: pointer;\"> <span>")
	}
	w.raw(body)
	if w.interactive {
		w.raw("</span></label>")
	}
	w.raw("</li>\n")
}

// contextSection renders one of the free-text context blocks. Only
// line breaks survive; everything else is escaped text.
func (w *htmlBuilder) contextSection(heading, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	body := strings.ReplaceAll(Esc(text), "\n", "<br>")
	w.raw("  <div style=\"margin-bottom: 16px;\">\n")
	w.raw("    <h4 style=\"" + headingStyle + "\">" + heading + "</h4>\n")
	w.raw("    <div style=\"font-size: 14px; color: #333; line-height: 1.5;\">" + body + "</div>\n")
	w.raw("  </div>\n")
}

func link(href, text string) string {
	return "<a href=\"" + Esc(href) + "\" style=\"color: " + linkColor + ";\">" + text + "</a>"
}

func boldLink(href, text string) string {
	return "<a href=\"" + Esc(href) + "\" style=\"color: " + linkColor + "; text-decoration: none; font-weight: 600;\">" + text + "</a>"
}

func formatMeetingTime(raw string) string {
	t, ok := parseDatetime(raw)
	if !ok {
		return invalidDate
	}
	return t.Format("Jan 2, 3:04 PM")
}

func formatDeadline(raw string) string {
	t, ok := parseDatetime(raw)
	if !ok {
		return invalidDate
	}
	return t.Format("Jan 2, 2006")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// GenerateHTML renders the civic action box. Sections appear in a
// fixed order and only when their backing data is present; the
// response form and footer always render. The output is
// self-contained inline-styled markup with no script tags.
func GenerateHTML(in Input, opts Options) string {
	w := &htmlBuilder{interactive: opts.InteractiveCheckboxes}

	w.raw("<div class=\"civic-action-box\" style=\"background: #f0f5f8; border: 1px solid #d0d8e0; border-radius: 8px; padding: 20px; font-family: -apple-system, sans-serif; max-width: 350px;\">\n")
	w.raw("  <h3 style=\"font-size: 18px; font-weight: bold; margin: 0 0 16px 0; padding-bottom: 12px; border-bottom: 2px solid " + linkColor + ";\">🗳️ Civic Action Toolbox</h3>\n")

	w.contextSection("Why it matters", in.WhyItMatters)
	w.contextSection("Who's making public decisions", in.WhosDeciding)

	if len(in.Meetings) > 0 {
		w.sectionOpen("Upcoming Meetings")
		for _, m := range in.Meetings {
			w.item("attend_meeting", m.Title, meetingBody(m))
		}
		w.sectionClose()
	}

	if len(in.CommentPeriods) > 0 {
		w.sectionOpen("Open Comment Periods")
		for _, p := range in.CommentPeriods {
			w.item("submit_comment", p.Title, commentPeriodBody(p))
		}
		w.sectionClose()
	}

	if len(in.Officials) > 0 {
		w.sectionOpen("Contact Your Representatives")
		for _, o := range in.Officials {
			w.item("contact_official", o.Name, officialBody(o))
		}
		w.sectionClose()
	}

	if len(in.Actions) > 0 {
		w.sectionOpen("Civic Actions: What You Can Do")
		for _, a := range in.Actions {
			w.item(UTMSlug(a.Title), a.Title, actionBody(a))
		}
		w.sectionClose()
	}

	if len(in.Organizations) > 0 {
		w.sectionOpen("Organizations to Follow")
		for _, o := range in.Organizations {
			w.item("explore_organization", o.Name, organizationBody(o))
		}
		w.sectionClose()
	}

	w.contextSection("What to watch for next", in.WhatToWatch)

	w.raw(responseForm)
	w.raw(footer)
	w.raw("</div>")

	return w.b.String()
}

func meetingBody(m models.Meeting) string {
	var b strings.Builder
	b.WriteString("<strong>" + Esc(m.Title) + "</strong>")
	if m.Agency != "" {
		b.WriteString(Esc(" (" + m.Agency + ")"))
	}
	b.WriteString(" — " + formatMeetingTime(m.StartDatetime))

	if raw := firstNonEmpty(m.AgendaURL, m.DetailsURL, m.VirtualURL); raw != "" {
		if tracked, ok := TrackLink(raw, "meeting_"+firstNonEmpty(m.Agency, m.Title)); ok {
			b.WriteString(" · " + link(tracked, "Details"))
		}
	}

	cal := BuildCalendarLinks(m)
	google, _ := TrackLink(cal.Google, "calendar_google")
	outlook, _ := TrackLink(cal.Outlook, "calendar_outlook")
	b.WriteString("<br><span style=\"font-size: 12px;\">📅 " + link(google, "Google") + " · " + link(outlook, "Outlook") + "</span>")
	return b.String()
}

func commentPeriodBody(p models.CommentPeriod) string {
	var b strings.Builder
	if tracked, ok := TrackLink(p.CommentURL, "comment_"+firstNonEmpty(p.Agency, p.Title)); ok && p.CommentURL != "" {
		b.WriteString(boldLink(tracked, Esc(p.Title)))
	} else {
		b.WriteString("<strong>" + Esc(p.Title) + "</strong>")
	}
	if p.Agency != "" {
		b.WriteString(Esc(" (" + p.Agency + ")"))
	}
	if p.EndDate != "" {
		deadline := "Deadline: " + formatDeadline(p.EndDate)
		if p.DaysRemaining != nil {
			deadline += " — " + strconv.Itoa(*p.DaysRemaining) + " days left"
		}
		b.WriteString("<br><span style=\"color: #666; font-size: 12px;\">" + deadline + "</span>")
	}
	if p.Description != "" {
		b.WriteString("<br><span style=\"color: #666; font-size: 13px;\">" + Esc(truncate(p.Description, descriptionLimit)) + "</span>")
	}
	return b.String()
}

func officialBody(o models.Official) string {
	var b strings.Builder
	b.WriteString("<strong>" + Esc(o.Name) + "</strong>")
	if o.Party != "" {
		b.WriteString(" (" + Esc(o.Party) + ")")
	}
	if o.Office != "" || o.District != "" {
		parts := make([]string, 0, 2)
		if o.Office != "" {
			parts = append(parts, Esc(o.Office))
		}
		if o.District != "" {
			parts = append(parts, Esc(o.District))
		}
		b.WriteString("<br><span style=\"color: #666; font-size: 12px;\">" + strings.Join(parts, ", ") + "</span>")
	}
	contact := make([]string, 0, 2)
	if o.Email != "" {
		if href, ok := SafeURL("mailto:" + o.Email); ok {
			contact = append(contact, "<a href=\""+href+"\" style=\"color: "+linkColor+"; font-size: 12px;\">"+Esc(o.Email)+"</a>")
		}
	}
	if o.Phone != "" {
		contact = append(contact, "<span style=\"color: #666; font-size: 12px;\">"+Esc(o.Phone)+"</span>")
	}
	if len(contact) > 0 {
		b.WriteString("<br>" + strings.Join(contact, " · "))
	}
	return b.String()
}

func actionBody(a models.Action) string {
	var b strings.Builder
	if tracked, ok := TrackLink(a.URL, "action_"+a.Title); ok && a.URL != "" {
		b.WriteString(boldLink(tracked, Esc(a.Title)))
	} else {
		b.WriteString("<strong>" + Esc(a.Title) + "</strong>")
	}
	if a.Description != "" {
		b.WriteString("<br><span style=\"color: #666; font-size: 13px;\">" + Esc(a.Description) + "</span>")
	}
	return b.String()
}

func organizationBody(o models.Organization) string {
	href := o.URL
	if href == "" {
		href = "#"
	}
	tracked, ok := TrackLink(href, "org_"+o.Name)
	if !ok {
		tracked = "#"
	}
	return "<a href=\"" + Esc(tracked) + "\" style=\"color: " + linkColor + "; text-decoration: none;\">" + Esc(o.Name) + "</a>"
}

const responseForm = `  <div class="civic-response-form" style="margin: 16px 0 12px 0; padding: 12px; background: #e8f0fe; border-radius: 6px;">
    <p style="font-size: 13px; color: #333; margin: 0 0 8px 0; font-weight: 600;">Did this toolbox help you take action? Tell us about it.</p>
    <div class="civic-response-fields">
      <textarea class="civic-response-message" rows="3" placeholder="What action did you take?" style="width: 100%; box-sizing: border-box; padding: 6px 10px; border: 1px solid #ccc; border-radius: 4px; font-size: 13px; margin-bottom: 8px;"></textarea>
      <input type="email" class="civic-response-email" placeholder="Your email (optional)" style="width: 100%; box-sizing: border-box; padding: 6px 10px; border: 1px solid #ccc; border-radius: 4px; font-size: 13px; margin-bottom: 8px;">
      <button type="button" class="civic-response-submit" style="padding: 6px 14px; background: #2f80c3; color: white; border: none; border-radius: 4px; font-size: 13px; cursor: pointer; font-weight: 600;">Send</button>
    </div>
    <p class="civic-response-thanks" style="display: none; font-size: 13px; color: #2f80c3; margin: 8px 0 0 0; font-weight: 600;">Thank you! Your response has been recorded.</p>
  </div>
`

const footer = `  <p style="font-size: 13px; color: #333; margin: 16px 0 12px 0; font-style: italic;">
    If you take civic action please let us know — email us at <a href="mailto:connect@planetdetroit.org" style="color: #2f80c3;">connect@planetdetroit.org</a>.
  </p>
  <p style="font-size: 11px; color: #888; margin: 0; padding-top: 12px; border-top: 1px solid #d0d8e0;">
    Civic resources compiled by <a href="https://planetdetroit.org" style="color: #2f80c3;">Planet Detroit</a>
  </p>
`
