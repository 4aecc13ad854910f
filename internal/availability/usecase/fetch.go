package usecase

import (
	"context"
	"sync"
	"time"

	"mutual-availability/internal/model"
)

type fetchResult struct {
	userID    string
	provider  model.CalendarProvider
	intervals []model.BusyInterval
	err       error
}

// fetchBusyIntervals fans out one goroutine per (user, provider) pair. Each
// fetch carries its own timeout so a slow backend cannot stall the rest;
// cancelling ctx stops all in-flight fetches. Any single failure is recorded
// and skipped — the pipeline always proceeds with whatever data arrived.
func (uc *implUseCase) fetchBusyIntervals(
	ctx context.Context,
	userIDs []string,
	providers []model.CalendarProvider,
	from, to time.Time,
) []model.BusyInterval {
	results := make(chan fetchResult)

	var wg sync.WaitGroup
	for _, userID := range userIDs {
		for _, p := range providers {
			gw, err := uc.registry.Lookup(p)
			if err != nil {
				uc.l.Debugf(ctx, "availability: provider %s not registered, skipping", p)
				continue
			}

			wg.Add(1)
			go func(userID string, p model.CalendarProvider) {
				defer wg.Done()
				fetchCtx, cancel := context.WithTimeout(ctx, uc.fetchTimeout)
				defer cancel()

				intervals, err := gw.FetchBusyIntervals(fetchCtx, userID, from, to)
				results <- fetchResult{userID: userID, provider: p, intervals: intervals, err: err}
			}(userID, p)
		}
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var all []model.BusyInterval
	for r := range results {
		if r.err != nil {
			// Recovered locally: an expired token or flaky backend must never
			// fail the whole computation.
			uc.l.Warnf(ctx, "availability: %s fetch failed for user %s: %v", r.provider, r.userID, r.err)
			continue
		}
		all = append(all, r.intervals...)
	}
	return all
}
