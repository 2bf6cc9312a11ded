package crowd

// ResolutionSource tells whether a lookup hit a known event or fell back.
type ResolutionSource string

const (
	SourceFound   ResolutionSource = "found"
	SourceDefault ResolutionSource = "default"
)

// Resolution is the outcome of looking up a forecast by event id.
// Record is always populated: the default record stands in for unknown ids.
type Resolution struct {
	EventID string              `json:"eventId"`
	Source  ResolutionSource    `json:"source"`
	Record  CrowdForecastRecord `json:"record"`
}

// Found reports whether the event id matched a known record.
func (r Resolution) Found() bool {
	return r.Source == SourceFound
}
