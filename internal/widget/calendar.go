package widget

import (
	"net/url"
	"strings"
	"time"

	"github.com/planet-detroit/civic-action-api/internal/models"
)

// CalendarLinks holds the add-to-calendar deep links for a meeting.
// Both fields are always populated.
type CalendarLinks struct {
	Google  string `json:"google"`
	Outlook string `json:"outlook"`
}

const (
	calendarTimeZone = "America/Detroit"
	invalidDate      = "Invalid Date"
)

// Layouts accepted for meeting timestamps, most specific first.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseDatetime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// encodeComponent percent-encodes a query value the way browsers do,
// with spaces as %20 rather than +.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// BuildCalendarLinks turns a meeting into Google and Outlook
// add-to-calendar URLs. The event is assumed to run exactly one hour;
// no stored end time is consulted.
//
// The compact Google timestamps keep their Z suffix even though the
// source timestamp is naive local time and ctz pins the zone to
// Detroit. Google resolves the mismatch in the zone's favor and the
// published widgets depend on that, so the format is kept as-is.
func BuildCalendarLinks(m models.Meeting) CalendarLinks {
	compactStart, compactEnd := invalidDate, invalidDate
	isoStart, isoEnd := invalidDate, invalidDate
	if start, ok := parseDatetime(m.StartDatetime); ok {
		end := start.Add(time.Hour)
		compactStart = start.UTC().Format("20060102T150405Z")
		compactEnd = end.UTC().Format("20060102T150405Z")
		isoStart = start.UTC().Format("2006-01-02T15:04:05.000Z")
		isoEnd = end.UTC().Format("2006-01-02T15:04:05.000Z")
	}

	locationParts := make([]string, 0, 3)
	for _, part := range []string{m.LocationName, m.LocationAddress, m.LocationCity} {
		if part != "" {
			locationParts = append(locationParts, part)
		}
	}
	location := strings.Join(locationParts, ", ")

	detailParts := make([]string, 0, 4)
	if m.Agency != "" {
		detailParts = append(detailParts, "Agency: "+m.Agency)
	}
	if m.VirtualURL != "" {
		detailParts = append(detailParts, "Join online: "+m.VirtualURL)
	}
	if m.AgendaURL != "" {
		detailParts = append(detailParts, "Agenda: "+m.AgendaURL)
	}
	if m.PublicCommentInstructions != "" {
		detailParts = append(detailParts, m.PublicCommentInstructions)
	}
	details := strings.Join(detailParts, "\n")

	google := "https://calendar.google.com/calendar/render?action=TEMPLATE" +
		"&text=" + encodeComponent(m.Title) +
		"&dates=" + compactStart + "/" + compactEnd +
		"&ctz=" + calendarTimeZone +
		"&details=" + encodeComponent(details) +
		"&location=" + encodeComponent(location)

	outlook := "https://outlook.live.com/calendar/0/action/compose" +
		"?subject=" + encodeComponent(m.Title) +
		"&startdt=" + isoStart +
		"&enddt=" + isoEnd +
		"&body=" + encodeComponent(details) +
		"&location=" + encodeComponent(location)

	return CalendarLinks{Google: google, Outlook: outlook}
}
