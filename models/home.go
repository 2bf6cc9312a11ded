package models

// Weather is the compact weather badge shared by the info screens.
type Weather struct {
	Icon string `json:"icon"`
	Temp string `json:"temp"`
	Date string `json:"date,omitempty"`
}

// Stat is one headline figure on the home screen ("142%" / "前日比").
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TodayEvent is the home screen's event-of-the-day card.
type TodayEvent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HomeFeed mirrors home_data.json.
type HomeFeed struct {
	Title      string     `json:"title"`
	Subtitle   string     `json:"subtitle"`
	Stats      []Stat     `json:"stats"`
	TodayEvent TodayEvent `json:"todayEvent"`
	Weather    Weather    `json:"weather"`
}
