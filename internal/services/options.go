package services

import "time"

// Options carries the runtime mode of the services
type Options struct {
	// Production enables live platform calls. Outside production every
	// listing is padded with fallback mentors and bookings are mocked.
	Production bool
	// Now is the clock used for fallback data
	Now func() time.Time
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now().UTC()
}

func modeLabel(production bool) string {
	if production {
		return "production"
	}
	return "development"
}
