package availability

import (
	"time"

	"mutual-availability/internal/model"
)

// Default business-hours window applied during request normalization when a
// mutual-availability caller supplies no preferences. Fallbacks live here,
// in one place, never scattered through the pipeline.
const (
	defaultBusinessStartHour = 9
	defaultBusinessEndHour   = 17
)

// DefaultPreferences returns the full-business-hours preference set:
// Monday through Friday, 09:00-17:00, external calendars consulted.
func DefaultPreferences() model.SchedulingPreferences {
	weekdays := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
	}
	prefs := model.SchedulingPreferences{UseExternalCalendars: true}
	for _, wd := range weekdays {
		prefs.DayPreferences = append(prefs.DayPreferences, model.DayPreference{
			Weekday: wd,
			Windows: []model.TimeOfDayWindow{
				{StartHour: defaultBusinessStartHour, EndHour: defaultBusinessEndHour},
			},
		})
	}
	return prefs
}
