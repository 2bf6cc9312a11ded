package crowd

// HourlyTrendPoint is one point of the average-vs-predicted line chart.
type HourlyTrendPoint struct {
	Hour      string `json:"hour"`
	Average   int    `json:"average"`
	Predicted int    `json:"predicted"`
}

// DailyComparisonPoint is one group of the today/yesterday/last-week bar chart.
type DailyComparisonPoint struct {
	Name      string `json:"name"`
	Today     int    `json:"today"`
	Yesterday int    `json:"yesterday"`
	LastWeek  int    `json:"lastWeek"`
}

// CrowdFixture mirrors crowd_data.json.
type CrowdFixture struct {
	Events              map[string]CrowdForecastRecord `json:"events"`
	Default             CrowdForecastRecord            `json:"default"`
	HourlyTrendData     []HourlyTrendPoint             `json:"hourlyTrendData"`
	DailyComparisonData []DailyComparisonPoint         `json:"dailyComparisonData"`
}
