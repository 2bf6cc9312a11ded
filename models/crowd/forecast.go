package crowd

import (
	"fmt"
	"strconv"
	"strings"
)

// WeatherInfo is the weather badge shown next to a forecast date.
type WeatherInfo struct {
	Icon string `json:"icon"`
	Temp string `json:"temp"`
}

// EventInfo describes the event a forecast is attached to.
type EventInfo struct {
	Time   string `json:"time"`
	Name   string `json:"name"`
	Number int    `json:"number"`
}

// Crowdness is the headline crowd level, e.g. "140%" compared to the previous day.
type Crowdness struct {
	Percentage string `json:"percentage"`
	Label      string `json:"label"`
}

// Ratio parses Percentage into a fraction ("140%" -> 1.4).
func (c Crowdness) Ratio() (float64, error) {
	s := strings.TrimSpace(c.Percentage)
	if !strings.HasSuffix(s, "%") {
		return 0, fmt.Errorf("crowdness percentage %q has no %% suffix", c.Percentage)
	}
	n, err := strconv.Atoi(strings.TrimSuffix(s, "%"))
	if err != nil {
		return 0, fmt.Errorf("crowdness percentage %q: %w", c.Percentage, err)
	}
	return float64(n) / 100, nil
}

// HourSlot is one hour of the predicted visitor curve.
type HourSlot struct {
	Hour  string `json:"hour"`
	Crowd []bool `json:"crowd"`
	Value int    `json:"value"`
}

// FilledCount returns how many crowd indicators are lit.
func (h HourSlot) FilledCount() int {
	n := 0
	for _, on := range h.Crowd {
		if on {
			n++
		}
	}
	return n
}

// CrowdForecastRecord is the crowd prediction bundle for one event/venue/day.
type CrowdForecastRecord struct {
	Date             string      `json:"date"`
	Weather          WeatherInfo `json:"weather"`
	Event            EventInfo   `json:"event"`
	Crowdness        Crowdness   `json:"crowdness"`
	HourlyPrediction []HourSlot  `json:"hourlyPrediction"`
	RestaurantAdvice string      `json:"restaurantAdvice"`
	CustomerAdvice   string      `json:"customerAdvice"`
	StoreName        string      `json:"storeName"`
}

// PeakHour returns the busiest slot. Ties keep the earliest hour.
func (r CrowdForecastRecord) PeakHour() (HourSlot, bool) {
	if len(r.HourlyPrediction) == 0 {
		return HourSlot{}, false
	}
	peak := r.HourlyPrediction[0]
	for _, h := range r.HourlyPrediction[1:] {
		if h.Value > peak.Value {
			peak = h
		}
	}
	return peak, true
}

// Clone returns a copy that shares no slices with r.
func (r CrowdForecastRecord) Clone() CrowdForecastRecord {
	out := r
	if r.HourlyPrediction != nil {
		out.HourlyPrediction = make([]HourSlot, len(r.HourlyPrediction))
		for i, h := range r.HourlyPrediction {
			if h.Crowd != nil {
				h.Crowd = append(make([]bool, 0, len(h.Crowd)), h.Crowd...)
			}
			out.HourlyPrediction[i] = h
		}
	}
	return out
}
