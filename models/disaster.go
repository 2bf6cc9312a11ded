package models

// Headline is the emergency notice at the top of the disaster screen.
type Headline struct {
	Title  string `json:"title"`
	Notice string `json:"notice"`
	Source string `json:"source"`
}

// Evacuation is the current evacuation order status.
type Evacuation struct {
	Status  string `json:"status"`
	Shelter string `json:"shelter"`
}

// Shelter is an evacuation site or temporary stay facility.
type Shelter struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Kind     string  `json:"kind"`
	Capacity int     `json:"capacity"`
}

// WeatherAlerts lists the active warnings and advisories for the ward.
type WeatherAlerts struct {
	Area       string   `json:"area"`
	Status     string   `json:"status"`
	Warnings   []string `json:"warnings"`
	Advisories []string `json:"advisories"`
}

// DisasterSns is the ward's disaster-prevention social account.
type DisasterSns struct {
	Name       string `json:"name"`
	Handle     string `json:"handle"`
	TwitterURL string `json:"twitterUrl"`
	LineURL    string `json:"lineUrl"`
}

// DisasterInfo mirrors disaster_data.json.
type DisasterInfo struct {
	Headline   Headline      `json:"headline"`
	Evacuation Evacuation    `json:"evacuation"`
	Shelters   []Shelter     `json:"shelters"`
	Weather    WeatherAlerts `json:"weather"`
	Sns        DisasterSns   `json:"sns"`
}
