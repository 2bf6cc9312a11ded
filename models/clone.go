package models

// Clone returns a copy that shares no slices with h.
func (h HomeFeed) Clone() HomeFeed {
	h.Stats = cloneSlice(h.Stats)
	return h
}

// Clone returns a copy that shares no slices with l.
func (l EventListing) Clone() EventListing {
	if l.Sections == nil {
		return l
	}
	sections := make([]EventSection, len(l.Sections))
	for i, s := range l.Sections {
		s.Events = cloneSlice(s.Events)
		sections[i] = s
	}
	l.Sections = sections
	return l
}

// Clone returns a copy that shares no slices with d.
func (d DisasterInfo) Clone() DisasterInfo {
	d.Shelters = cloneSlice(d.Shelters)
	d.Weather.Warnings = cloneSlice(d.Weather.Warnings)
	d.Weather.Advisories = cloneSlice(d.Weather.Advisories)
	return d
}

// Clone returns a copy that shares no slices with l.
func (l LocalInfo) Clone() LocalInfo {
	if l.Sections != nil {
		sections := make([]InfoSection, len(l.Sections))
		for i, s := range l.Sections {
			s.Items = cloneSlice(s.Items)
			sections[i] = s
		}
		l.Sections = sections
	}
	l.SnsAccounts = cloneSlice(l.SnsAccounts)
	return l
}

// cloneSlice copies s, keeping nil and empty distinct so JSON output is unchanged.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
