package service

import "github.com/MKhiriev/go-food-keeper/internal/config"

const (
	defaultLocalLimit    = 30
	defaultMaxLocalLimit = 50
	defaultExternalLimit = 20
)

// searchLimits clamps caller-supplied result limits.
type searchLimits struct {
	localDefault int
	localMax     int
	externalCap  int
}

func newSearchLimits(cfg config.Services) searchLimits {
	l := searchLimits{
		localDefault: cfg.LocalSearchLimit,
		localMax:     cfg.MaxLocalSearchLimit,
		externalCap:  cfg.ExternalSearchLimit,
	}
	if l.localMax <= 0 {
		l.localMax = defaultMaxLocalLimit
	}
	if l.localDefault <= 0 {
		l.localDefault = defaultLocalLimit
	}
	if l.localDefault > l.localMax {
		l.localDefault = l.localMax
	}
	if l.externalCap <= 0 {
		l.externalCap = defaultExternalLimit
	}
	return l
}

// local maps a non-positive limit to the default and caps it at the maximum.
func (l searchLimits) local(limit int) int {
	switch {
	case limit <= 0:
		return l.localDefault
	case limit > l.localMax:
		return l.localMax
	default:
		return limit
	}
}

func (l searchLimits) external(limit int) int {
	if limit <= 0 || limit > l.externalCap {
		return l.externalCap
	}
	return limit
}
