package models

// EventType classifies an entry of the event listing.
type EventType string

const (
	EventTypeFestival    EventType = "festival"
	EventTypePerformance EventType = "performance"
	EventTypeTraditional EventType = "traditional"
)

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeFestival, EventTypePerformance, EventTypeTraditional:
		return true
	}
	return false
}

// Event is a single programme item. Its id is what the crowd screen is opened with.
type Event struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Time  string    `json:"time"`
	Venue string    `json:"venue,omitempty"`
	Type  EventType `json:"type"`
}

// EventSection groups the programme of one festival.
type EventSection struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Events []Event `json:"events"`
}

// EventListing mirrors event_data.json.
type EventListing struct {
	Weather    Weather        `json:"weather"`
	WebsiteURL string         `json:"websiteUrl"`
	Sections   []EventSection `json:"sections"`
}
