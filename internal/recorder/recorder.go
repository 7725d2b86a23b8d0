package recorder

import (
	"context"
	"time"

	"github.com/allbin/go-ka3005p"
)

// StatusReader is the part of a device the recorder polls
type StatusReader interface {
	Status() (ka3005p.Status, error)
}

// Recorder polls a supply on an interval and stores every reading
type Recorder struct {
	store    *Store
	supply   StatusReader
	port     string
	interval time.Duration
	log      ka3005p.Logger

	// now is replaceable in tests
	now func() time.Time
}

func New(store *Store, supply StatusReader, port string, interval time.Duration, log ka3005p.Logger) *Recorder {
	return &Recorder{
		store:    store,
		supply:   supply,
		port:     port,
		interval: interval,
		log:      log,
		now:      time.Now,
	}
}

// Sample reads the supply once and stores the result
func (r *Recorder) Sample(ctx context.Context) (ka3005p.Status, error) {
	status, err := r.supply.Status()
	if err != nil {
		return ka3005p.Status{}, err
	}
	if _, err := r.store.Insert(ctx, r.port, r.now(), status); err != nil {
		return ka3005p.Status{}, err
	}
	return status, nil
}

// Run samples until ctx ends or count samples have been stored (count
// <= 0 means unbounded). Read failures are logged and skipped; storage
// failures stop the run. onSample, if non-nil, sees every stored reading.
func (r *Recorder) Run(ctx context.Context, count int, onSample func(ka3005p.Status)) (int, error) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	stored := 0
	for ctx.Err() == nil {
		status, err := r.supply.Status()
		if err != nil {
			if r.log != nil {
				r.log.Error("status read failed", "port", r.port, "error", err)
			}
		} else {
			if _, err := r.store.Insert(ctx, r.port, r.now(), status); err != nil {
				return stored, err
			}
			stored++
			if onSample != nil {
				onSample(status)
			}
			if count > 0 && stored >= count {
				return stored, nil
			}
		}

		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}
	return stored, nil
}
