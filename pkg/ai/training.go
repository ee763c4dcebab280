package ai

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// Trainer runs simulated training jobs. Nothing is learned: a job waits for
// the configured delay and logs completion, so clients can exercise the
// asynchronous flow.
type Trainer struct {
	delay   time.Duration
	running atomic.Int32
	wg      sync.WaitGroup
}

func NewTrainer(delay time.Duration) *Trainer { return &Trainer{delay: delay} }

// Start launches job id in the background. Cancelling ctx aborts it.
func (t *Trainer) Start(ctx context.Context, id string) {
	t.running.Add(1)
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer t.running.Add(-1)

		log.Info().Str("training_id", id).Dur("delay", t.delay).Msg("training started (simulated)")
		timer := time.NewTimer(t.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			log.Warn().Str("training_id", id).Err(ctx.Err()).Msg("training aborted")
		case <-timer.C:
			log.Info().Str("training_id", id).Msg("training finished (simulated)")
		}
	}()
}

// Running is the number of jobs not yet finished.
func (t *Trainer) Running() int { return int(t.running.Load()) }

// Wait blocks until every started job returns.
func (t *Trainer) Wait() { t.wg.Wait() }
