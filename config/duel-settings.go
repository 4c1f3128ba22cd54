package config

import "time"

// Duel settings
type DuelSettings struct {
	InviteWindow  time.Duration // How long a pending challenge stays acceptable
	MinWordCount  int           // Smallest allowed duel size
	MaxWordCount  int           // Largest allowed duel size
	SweepInterval time.Duration // Interval of the optional expiry sweep
}

var DefaultDuelSettings = DuelSettings{
	InviteWindow:  24 * time.Hour,
	MinWordCount:  1,
	MaxWordCount:  50,
	SweepInterval: 1 * time.Minute,
}
