package schedule

import (
	"time"

	ics "github.com/arran4/golang-ical"
)

const (
	icsProductID = "-//Sorte//Schedule//EN"
	icsCalName   = "Sorte Schedule"
	icsUIDDomain = "@sorte"
)

var recurrenceRules = map[string]string{
	RecurrenceDaily:   "FREQ=DAILY",
	RecurrenceWeekly:  "FREQ=WEEKLY",
	RecurrenceMonthly: "FREQ=MONTHLY",
	RecurrenceYearly:  "FREQ=YEARLY",
}

// RenderICS serializes events into a VCALENDAR. All-day events are written
// as DATE values; timed events in UTC.
func RenderICS(events []Event, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetXWRCalName(icsCalName)

	for _, e := range events {
		ev := cal.AddEvent(e.ID.Hex() + icsUIDDomain)
		ev.SetDtStampTime(stamp)
		if !e.CreatedAt.IsZero() {
			ev.SetCreatedTime(e.CreatedAt)
		}
		if !e.UpdatedAt.IsZero() {
			ev.SetModifiedAt(e.UpdatedAt)
		}

		if e.IsAllDay {
			ev.SetAllDayStartAt(e.StartTime.UTC())
			ev.SetAllDayEndAt(allDayEnd(e.StartTime.UTC(), e.EndTime.UTC()))
		} else {
			ev.SetStartAt(e.StartTime)
			ev.SetEndAt(e.EndTime)
		}

		ev.SetSummary(e.Title)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.Location != "" {
			ev.SetLocation(e.Location)
		}
		if e.Color != "" {
			ev.SetColor(e.Color)
		}
		if rule, ok := recurrenceRules[e.Recurrence]; ok {
			ev.AddRrule(rule)
		}
	}

	return cal.Serialize()
}

// allDayEnd returns the exclusive DTEND date, at least one day after start
func allDayEnd(start, end time.Time) time.Time {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if end.After(endDay) {
		endDay = endDay.AddDate(0, 0, 1)
	}
	if !endDay.After(startDay) {
		endDay = startDay.AddDate(0, 0, 1)
	}
	return endDay
}
