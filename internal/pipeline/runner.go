// Package pipeline fans per-domain checks out across a bounded worker pool
// and aggregates the results into the final report order.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"

	"github.com/hakim/domainscout/internal/models"
)

const (
	minWorkers = 1
	maxWorkers = 50
)

// CheckFunc performs the full check for one domain. Implementations must
// not panic as API contract, but the runner still isolates panics.
type CheckFunc func(ctx context.Context, rec models.DomainRecord) models.CheckResult

// Runner executes check tasks concurrently
type Runner struct {
	// Check performs one domain check. Required.
	Check CheckFunc

	// Gate is the shared rate gate acquired before each check. Optional.
	Gate Gate

	// Workers bounds pool concurrency; clamped to [1,50].
	Workers int

	// OnResult, when set, is called after each check completes with the
	// running completion count. Called from worker goroutines.
	OnResult func(res models.CheckResult, completed, total int)
}

// Run checks every record and returns results sorted by score descending,
// domain name ascending. Completion order across domains is nondeterministic;
// the sort restores a stable report order.
//
// A panic inside a single check is caught at the task boundary and converted
// into a synthetic error-status result, so one bad domain never aborts the
// batch.
func (r *Runner) Run(ctx context.Context, records []models.DomainRecord) []models.CheckResult {
	workers := clampWorkers(r.Workers)
	total := len(records)

	p := pool.NewWithResults[models.CheckResult]().WithMaxGoroutines(workers)

	var completed atomic.Int64
	for _, rec := range records {
		rec := rec
		p.Go(func() models.CheckResult {
			res := r.runIsolated(ctx, rec)
			n := int(completed.Add(1))
			if r.OnResult != nil {
				r.OnResult(res, n, total)
			}
			return res
		})
	}

	results := p.Wait()

	sort.Slice(results, func(i, j int) bool {
		if results[i].Recommendation.Score != results[j].Recommendation.Score {
			return results[i].Recommendation.Score > results[j].Recommendation.Score
		}
		return results[i].Domain < results[j].Domain
	})

	return results
}

// runIsolated acquires the rate gate, runs the check, and catches any panic
// as a synthetic error result.
func (r *Runner) runIsolated(ctx context.Context, rec models.DomainRecord) (result models.CheckResult) {
	defer func() {
		if v := recover(); v != nil {
			logrus.Errorf("unhandled error checking %s: %v", rec.Domain, v)
			result = ErrorResult(rec, fmt.Sprintf("%v", v))
		}
	}()

	if r.Gate != nil {
		if err := r.Gate.Wait(ctx); err != nil {
			logrus.Debugf("rate gate wait interrupted for %s: %v", rec.Domain, err)
		}
	}

	return r.Check(ctx, rec)
}

// ErrorResult builds the synthetic result recorded when a check failed
// outright rather than merely coming back inconclusive.
func ErrorResult(rec models.DomainRecord, msg string) models.CheckResult {
	return models.CheckResult{
		Domain:       rec.Domain,
		YearsPopular: rec.Years,
		Status:       models.StatusError,
		Error:        msg,
		Recommendation: models.Recommendation{
			Score:          1,
			Reason:         "Check failed: " + msg,
			EstimatedValue: "Unknown",
		},
		CheckedAt: time.Now().UTC(),
	}
}

func clampWorkers(n int) int {
	if n < minWorkers {
		return minWorkers
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}
