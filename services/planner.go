package services

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DefaultLatency mimics the round trip of a real itinerary backend.
const DefaultLatency = 1500 * time.Millisecond

type Planner struct {
	latency time.Duration
	logger  *zap.Logger
}

func NewPlanner(latency time.Duration, logger *zap.Logger) *Planner {
	if latency < 0 {
		latency = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{latency: latency, logger: logger}
}

func (p *Planner) Latency() time.Duration {
	return p.latency
}

// Plan waits out the simulated latency and then builds the itinerary.
// It returns ctx.Err() if the caller goes away first.
func (p *Planner) Plan(ctx context.Context, destination string, days int) (DestinationRecord, error) {
	if p.latency > 0 {
		timer := time.NewTimer(p.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return DestinationRecord{}, ctx.Err()
		case <-timer.C:
		}
	}

	rec, known := Lookup(destination)
	if !known {
		rec = Synthesize(destination, days)
	}
	rec.Itinerary = Reconcile(rec.Itinerary, days)
	p.logger.Info("itinerary planned",
		zap.String("destination", rec.Name),
		zap.Int("days", days),
		zap.Bool("known", known))
	return rec, nil
}
