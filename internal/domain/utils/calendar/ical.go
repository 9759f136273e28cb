package calendar

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain/entity"
	ics "github.com/arran4/golang-ical"
)

// ExportEventsToICS converts a list of events into iCalendar (.ics) data.
// Each event carries display alarms one day and one hour before start,
// matching the in-app reminder windows. Events without an explicit end
// are given a two hour duration.
func ExportEventsToICS(events []entity.Event) ([]byte, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//GatherHub//EN")
	cal.SetVersion("2.0")
	cal.SetCalscale("GREGORIAN")

	for _, event := range events {
		uid := fmt.Sprintf("%s@gatherhub", event.ID)
		e := cal.AddEvent(uid)

		now := time.Now()
		e.SetDtStampTime(now)
		e.SetCreatedTime(event.CreatedAt)
		e.SetModifiedAt(now)

		e.SetStartAt(event.StartTime)
		e.SetEndAt(event.StartTime.Add(2 * time.Hour))

		e.SetSummary(event.Title)
		e.SetDescription(event.Description)
		e.SetLocation(event.Location)

		e.SetStatus(ics.ObjectStatusConfirmed)
		e.SetTimeTransparency(ics.TransparencyOpaque)
		e.SetClass(ics.ClassificationPublic)
		e.SetSequence(0)

		dayAlarm := e.AddAlarm()
		dayAlarm.SetAction(ics.ActionDisplay)
		dayAlarm.AddProperty("TRIGGER;VALUE=DURATION", "-P1D")
		dayAlarm.SetDescription(fmt.Sprintf("Reminder: %s (tomorrow)", event.Title))

		hourAlarm := e.AddAlarm()
		hourAlarm.SetAction(ics.ActionDisplay)
		hourAlarm.AddProperty("TRIGGER;VALUE=DURATION", "-PT1H")
		hourAlarm.SetDescription(fmt.Sprintf("Reminder: %s (in one hour)", event.Title))
	}

	var buf bytes.Buffer
	err := cal.SerializeTo(&buf)
	if err != nil {
		return nil, fmt.Errorf("error serializing calendar: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportEventToICS converts a single event into iCalendar (.ics) data.
func ExportEventToICS(event entity.Event) ([]byte, error) {
	return ExportEventsToICS([]entity.Event{event})
}
