package phase

import (
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"lunie/parameter"
)

// Resolver maps a calendar date to a phase record: exact table match first,
// analytic fallback otherwise. Results are cached per day so the render
// tick's daily-rollover check is O(1); a table reload bumps the table
// generation and drops the cached record.
type Resolver struct {
	table  *Table // nil means fallback-only
	logger *zap.SugaredLogger

	mu        sync.Mutex
	cachedDay string
	cachedGen uint64
	cached    Record
}

// NewResolver builds a resolver over an optional table. A nil table is
// valid; every date then takes the analytic path.
func NewResolver(table *Table, logger *zap.SugaredLogger) *Resolver {
	return &Resolver{table: table, logger: logger}
}

// Resolve returns the phase record for the given calendar date. Idempotent:
// repeated calls with the same date return an identical record.
func (r *Resolver) Resolve(date time.Time) (Record, error) {
	key := dayKey(date)
	var gen uint64
	if r.table != nil {
		gen = r.table.Generation()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cachedDay == key && r.cachedGen == gen {
		return r.cached, nil
	}

	rec, err := r.resolve(date, key)
	if err != nil {
		return Record{}, err
	}
	r.cachedDay = key
	r.cachedGen = gen
	r.cached = rec
	return rec, nil
}

func (r *Resolver) resolve(date time.Time, key string) (Record, error) {
	if r.table != nil {
		if rec, ok := r.table.Lookup(date); ok {
			r.checkConsistency(rec, key)
			return rec, nil
		}
	}

	rec := Fallback(date)
	if err := rec.Validate(); err != nil {
		return Record{}, fmt.Errorf("%w: fallback for %s: %v", ErrDataUnavailable, key, err)
	}
	return rec, nil
}

// checkConsistency compares a table row against the closed form. The two
// sources track each other within a couple of percentage points; a larger
// gap usually means a corrupt row, worth a warning but not a rejection.
func (r *Resolver) checkConsistency(rec Record, key string) {
	analytic := IlluminationForAge(rec.AgeDays)
	if diff := math.Abs(analytic - rec.IlluminationPct); diff > parameter.TableConsistencyTolerancePct {
		r.logger.Warnw("table row disagrees with analytic illumination",
			"date", key,
			"table_pct", rec.IlluminationPct,
			"analytic_pct", analytic,
			"diff", diff)
	}
}
