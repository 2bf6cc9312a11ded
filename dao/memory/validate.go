package memory

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"district-server/models"
	"district-server/models/crowd"
)

// hourOfDay extracts the leading hour number from labels such as "16時" or "9:00".
func hourOfDay(label string) (int, error) {
	digits := strings.TrimLeftFunc(label, unicode.IsSpace)
	end := strings.IndexFunc(digits, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == 0 {
		return 0, fmt.Errorf("hour label %q does not start with a number", label)
	}
	if end > 0 {
		digits = digits[:end]
	}
	h, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("hour label %q: %w", label, err)
	}
	if h < 0 || h > 24 {
		return 0, fmt.Errorf("hour label %q is outside 0-24", label)
	}
	return h, nil
}

func validateCrowdFixture(f crowd.CrowdFixture) error {
	if len(f.Default.HourlyPrediction) == 0 {
		return errors.New("default record is missing or has no hourlyPrediction")
	}

	// crowd indicator width must be the same everywhere
	slots := len(f.Default.HourlyPrediction[0].Crowd)
	if err := validateRecord("default", f.Default, slots); err != nil {
		return err
	}

	ids := make([]string, 0, len(f.Events))
	for id := range f.Events {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if id == "" {
			return errors.New("events contains an empty id")
		}
		if err := validateRecord("events["+id+"]", f.Events[id], slots); err != nil {
			return err
		}
	}

	if err := validateSeriesHours("hourlyTrendData", len(f.HourlyTrendData), func(i int) string { return f.HourlyTrendData[i].Hour }); err != nil {
		return err
	}
	for i, p := range f.HourlyTrendData {
		if p.Average < 0 || p.Predicted < 0 {
			return fmt.Errorf("hourlyTrendData[%d]: negative value", i)
		}
	}
	if err := validateSeriesHours("dailyComparisonData", len(f.DailyComparisonData), func(i int) string { return f.DailyComparisonData[i].Name }); err != nil {
		return err
	}
	for i, p := range f.DailyComparisonData {
		if p.Today < 0 || p.Yesterday < 0 || p.LastWeek < 0 {
			return fmt.Errorf("dailyComparisonData[%d]: negative value", i)
		}
	}
	return nil
}

// indicatorMismatch finds two slots whose lit indicator counts disagree with their values:
// busier has the higher value but fewer lit indicators than quieter.
func indicatorMismatch(r crowd.CrowdForecastRecord) (busier, quieter crowd.HourSlot, found bool) {
	for _, a := range r.HourlyPrediction {
		for _, b := range r.HourlyPrediction {
			if a.Value > b.Value && a.FilledCount() < b.FilledCount() {
				return a, b, true
			}
		}
	}
	return crowd.HourSlot{}, crowd.HourSlot{}, false
}

func validateRecord(where string, r crowd.CrowdForecastRecord, slots int) error {
	if strings.TrimSpace(r.Event.Name) == "" {
		return fmt.Errorf("%s: event.name is empty", where)
	}
	if _, err := r.Crowdness.Ratio(); err != nil {
		return fmt.Errorf("%s: %w", where, err)
	}
	if len(r.HourlyPrediction) == 0 {
		return fmt.Errorf("%s: hourlyPrediction is empty", where)
	}

	prev := -1
	for i, h := range r.HourlyPrediction {
		hour, err := hourOfDay(h.Hour)
		if err != nil {
			return fmt.Errorf("%s.hourlyPrediction[%d]: %w", where, i, err)
		}
		if hour <= prev {
			return fmt.Errorf("%s.hourlyPrediction[%d]: %q is not after the previous hour", where, i, h.Hour)
		}
		prev = hour

		if len(h.Crowd) != slots {
			return fmt.Errorf("%s.hourlyPrediction[%d]: crowd has %d slots, want %d", where, i, len(h.Crowd), slots)
		}
		if h.Value < 0 || h.Value > 100 {
			return fmt.Errorf("%s.hourlyPrediction[%d]: value %d outside 0-100", where, i, h.Value)
		}
	}
	return nil
}

func validateSeriesHours(where string, n int, label func(int) string) error {
	if n == 0 {
		return fmt.Errorf("%s is empty", where)
	}
	prev := -1
	for i := 0; i < n; i++ {
		hour, err := hourOfDay(label(i))
		if err != nil {
			return fmt.Errorf("%s[%d]: %w", where, i, err)
		}
		if hour <= prev {
			return fmt.Errorf("%s[%d]: %q is not after the previous hour", where, i, label(i))
		}
		prev = hour
	}
	return nil
}

func validateEventListing(l models.EventListing) error {
	sections := make(map[string]struct{}, len(l.Sections))
	events := make(map[string]struct{})
	for i, s := range l.Sections {
		if s.ID == "" {
			return fmt.Errorf("sections[%d]: empty id", i)
		}
		if _, dup := sections[s.ID]; dup {
			return fmt.Errorf("sections[%d]: duplicate id %q", i, s.ID)
		}
		sections[s.ID] = struct{}{}

		for j, e := range s.Events {
			if e.ID == "" || strings.TrimSpace(e.Title) == "" {
				return fmt.Errorf("sections[%d].events[%d]: id and title are required", i, j)
			}
			if _, dup := events[e.ID]; dup {
				return fmt.Errorf("sections[%d].events[%d]: duplicate id %q", i, j, e.ID)
			}
			events[e.ID] = struct{}{}
			if !e.Type.Valid() {
				return fmt.Errorf("sections[%d].events[%d]: unknown type %q", i, j, e.Type)
			}
		}
	}
	return nil
}

func validateDisasterInfo(d models.DisasterInfo) error {
	seen := make(map[string]struct{}, len(d.Shelters))
	for i, s := range d.Shelters {
		if s.ID == "" {
			return fmt.Errorf("shelters[%d]: empty id", i)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("shelters[%d]: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.Lat < -90 || s.Lat > 90 || s.Lng < -180 || s.Lng > 180 {
			return fmt.Errorf("shelters[%d]: coordinates (%f, %f) out of range", i, s.Lat, s.Lng)
		}
	}
	return nil
}
