package pipeline

import (
	"context"

	"github.com/couchcryptid/weatherman/internal/domain"
)

// StatsAggregator implements Aggregator with the domain reducers and a fixed
// presence policy.
type StatsAggregator struct {
	presence domain.Presence
}

// NewAggregator creates a StatsAggregator. With zeroAsAbsent set, readings of
// 0 are treated as gaps the way historical reports did.
func NewAggregator(zeroAsAbsent bool) *StatsAggregator {
	presence := domain.PresenceNumeric
	if zeroAsAbsent {
		presence = domain.PresenceTruthy
	}
	return &StatsAggregator{presence: presence}
}

func (a *StatsAggregator) Aggregate(_ context.Context, mode domain.Mode, records []domain.Record) (domain.Summary, error) {
	return domain.Aggregate(mode, records, a.presence)
}
