package models

import (
	"fmt"
	str2duration "github.com/xhit/go-str2duration/v2"
	"strings"
	"time"
)

// ContributionPolicy decides whether a trading day opens a new contribution
// period relative to the previous trading day. Policies are stateless, so
// the same policy value can back any number of concurrent runs.
type ContributionPolicy interface {
	NewPeriod(previous, current time.Time) bool
}

// NoContribution never contributes.
type NoContribution struct{}

func (NoContribution) NewPeriod(previous, current time.Time) bool {
	return false
}

// MonthlyContribution contributes on the first trading day of each calendar
// month.
type MonthlyContribution struct{}

func (MonthlyContribution) NewPeriod(previous, current time.Time) bool {
	return previous.Year() != current.Year() || previous.Month() != current.Month()
}

// IntervalContribution contributes whenever a fixed interval boundary falls
// between two consecutive trading days. Boundaries are anchored to the Unix
// epoch so the policy stays stateless.
type IntervalContribution struct {
	Every time.Duration
}

func (p IntervalContribution) NewPeriod(previous, current time.Time) bool {
	seconds := int64(p.Every / time.Second)
	if seconds <= 0 {
		return false
	}
	return previous.Unix()/seconds != current.Unix()/seconds
}

// ContributionPolicyFactory resolves a policy by name: "none", "monthly",
// or a duration of at least one second accepted by str2duration (for
// example "30d" or "720h").
func ContributionPolicyFactory(name string) (ContributionPolicy, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return NoContribution{}, nil
	case "monthly":
		return MonthlyContribution{}, nil
	default:
		every, err := str2duration.ParseDuration(name)
		if err != nil {
			return nil, fmt.Errorf("%s is not a known contribution policy", name)
		}
		if every < time.Second {
			return nil, fmt.Errorf("contribution interval %s must be at least one second", name)
		}
		return IntervalContribution{Every: every}, nil
	}
}
