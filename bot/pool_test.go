package bot

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sgerasimov/go-tgbot/models"
)

func TestPool_ProcessesEverySubmittedUpdate(t *testing.T) {
	var mu sync.Mutex
	var got []int64

	p := newPool(4, 8, func(_ context.Context, u *models.Update) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, u.UpdateID)
	})

	ctx := context.Background()
	p.start(ctx)
	for i := int64(1); i <= 20; i++ {
		p.submit(ctx, &models.Update{UpdateID: i})
	}
	p.stop()

	assert.Len(t, got, 20)
}

func TestPool_SubmitHonoursCancelledContext(t *testing.T) {
	block := make(chan struct{})
	p := newPool(1, 0, func(_ context.Context, _ *models.Update) {
		<-block
	})

	p.start(context.Background())
	p.submit(context.Background(), &models.Update{UpdateID: 1})

	// The single worker is busy and the queue is unbuffered, so this submit
	// can only return through the cancelled context.
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	p.submit(cancelled, &models.Update{UpdateID: 2})

	close(block)
	p.stop()
}

func TestPool_DefaultsGuardBadSizes(t *testing.T) {
	p := newPool(0, -1, func(_ context.Context, _ *models.Update) {})
	assert.Equal(t, 1, p.size)
	assert.Zero(t, cap(p.queue))
}
