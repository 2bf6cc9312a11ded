package models

// Overview bundles every info screen so a client can warm up in one request.
type Overview struct {
	Date      string       `json:"date"`
	Home      HomeFeed     `json:"home"`
	Events    EventListing `json:"events"`
	Disaster  DisasterInfo `json:"disaster"`
	LocalInfo LocalInfo    `json:"localInfo"`
}
