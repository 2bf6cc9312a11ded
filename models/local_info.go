package models

// InfoSection is a titled list of notices.
type InfoSection struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Contact holds the inquiry channels of the local council.
type Contact struct {
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	WebsiteURL string `json:"websiteUrl"`
}

// SnsAccount is an official social media account.
type SnsAccount struct {
	Name   string `json:"name"`
	Handle string `json:"handle,omitempty"`
	Icon   string `json:"icon"`
}

// LocalInfo mirrors local_info_data.json.
type LocalInfo struct {
	Weather     Weather       `json:"weather"`
	Sections    []InfoSection `json:"sections"`
	Contact     Contact       `json:"contact"`
	SnsAccounts []SnsAccount  `json:"snsAccounts"`
}
