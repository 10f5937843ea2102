// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package bot

import (
	"context"
	"sync"

	"github.com/sgerasimov/go-tgbot/models"
)

// pool is a fixed set of workers draining a buffered update queue, so the
// polling loop and the webhook receiver never block on slow handlers.
//
// Lifecycle: start, submit from the producers, then stop after every
// producer has finished. Submitting after stop panics on the closed
// channel, the caller owns that ordering.
type pool struct {
	size  int
	queue chan *models.Update
	run   func(ctx context.Context, update *models.Update)

	wg sync.WaitGroup
}

func newPool(size, queueSize int, run func(ctx context.Context, update *models.Update)) *pool {
	if size <= 0 {
		size = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &pool{
		size:  size,
		queue: make(chan *models.Update, queueSize),
		run:   run,
	}
}

func (p *pool) start(ctx context.Context) {
	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for update := range p.queue {
				p.run(ctx, update)
			}
		}()
	}
}

// submit enqueues one update. Blocks when the queue is full until a worker
// frees a slot or ctx is cancelled.
func (p *pool) submit(ctx context.Context, update *models.Update) {
	select {
	case p.queue <- update:
	case <-ctx.Done():
	}
}

// stop closes the queue and waits for the workers to drain it.
func (p *pool) stop() {
	close(p.queue)
	p.wg.Wait()
}
