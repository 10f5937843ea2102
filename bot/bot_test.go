package bot

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sgerasimov/go-tgbot/internal/mock"
	"github.com/sgerasimov/go-tgbot/models"
)

func messageUpdate(id int64, text string) models.Update {
	return models.Update{
		UpdateID: id,
		Message: &models.Message{
			MessageID: id,
			Text:      text,
			Chat:      models.Chat{ID: 1, Type: models.ChatTypePrivate},
		},
	}
}

// prepare builds the dispatch chain the way Run does, without starting any
// update source.
func prepare(b *Bot) {
	b.dispatch = b.buildDispatch()
}

// ── dispatch ─────────────────────────────────────────────────────────────────

func TestBot_Dispatch_MatchingHandlersRun(t *testing.T) {
	b := New(nil)

	var mu sync.Mutex
	var got []string

	_, err := b.OnMessage(func(ctx context.Context, b *Bot, u *models.Update) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, "first")
	})
	require.NoError(t, err)

	_, err = b.OnMessage(func(ctx context.Context, b *Bot, u *models.Update) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, "second")
	})
	require.NoError(t, err)

	_, err = b.OnCallbackQuery(func(ctx context.Context, b *Bot, u *models.Update) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, "callback")
	})
	require.NoError(t, err)

	prepare(b)
	u := messageUpdate(1, "hi")
	b.dispatch(context.Background(), b, &u)

	assert.ElementsMatch(t, []string{"first", "second"}, got)
}

func TestBot_Dispatch_FiltersGateHandlers(t *testing.T) {
	b := New(nil)

	var fired bool
	_, err := b.OnMessage(func(ctx context.Context, b *Bot, u *models.Update) {
		fired = true
	}, func(u *models.Update) bool {
		return u.Message.Text == "wanted"
	})
	require.NoError(t, err)

	prepare(b)

	skip := messageUpdate(1, "other")
	b.dispatch(context.Background(), b, &skip)
	assert.False(t, fired)

	match := messageUpdate(2, "wanted")
	b.dispatch(context.Background(), b, &match)
	assert.True(t, fired)
}

func TestBot_Dispatch_PanicRecovered(t *testing.T) {
	b := New(nil)

	var survived bool
	_, err := b.OnMessage(func(ctx context.Context, b *Bot, u *models.Update) {
		panic("handler exploded")
	})
	require.NoError(t, err)
	_, err = b.OnMessage(func(ctx context.Context, b *Bot, u *models.Update) {
		survived = true
	})
	require.NoError(t, err)

	prepare(b)
	u := messageUpdate(1, "boom")
	assert.NotPanics(t, func() {
		b.dispatch(context.Background(), b, &u)
	})
	assert.True(t, survived)
}

func TestBot_MiddlewareOrder(t *testing.T) {
	b := New(nil)

	var mu sync.Mutex
	var order []string
	record := func(s string) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, s)
	}

	mw := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(ctx context.Context, b *Bot, u *models.Update) {
				record(name + " in")
				next(ctx, b, u)
				record(name + " out")
			}
		}
	}

	require.NoError(t, b.Use(mw("outer"), mw("inner")))
	_, err := b.OnMessage(func(ctx context.Context, b *Bot, u *models.Update) {
		record("handler")
	})
	require.NoError(t, err)

	prepare(b)
	u := messageUpdate(1, "hi")
	b.dispatch(context.Background(), b, &u)

	assert.Equal(t, []string{"outer in", "inner in", "handler", "inner out", "outer out"}, order)
}

// ── registry ─────────────────────────────────────────────────────────────────

func TestBot_RemoveHandler(t *testing.T) {
	b := New(nil)

	var fired bool
	id, err := b.OnMessage(func(ctx context.Context, b *Bot, u *models.Update) {
		fired = true
	})
	require.NoError(t, err)

	require.NoError(t, b.RemoveHandler(id))
	assert.ErrorIs(t, b.RemoveHandler(id), ErrUnknownHandler)

	prepare(b)
	u := messageUpdate(1, "hi")
	b.dispatch(context.Background(), b, &u)
	assert.False(t, fired)
}

func TestBot_RegisterWhileRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockUpdatesAPI(ctrl)
	b := New(nil, WithUpdatesAPI(api), WithPollTimeout(1))

	started := make(chan struct{})
	api.EXPECT().DeleteWebhook(gomock.Any(), gomock.Any()).Return(true, nil)
	api.EXPECT().GetUpdates(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ *models.GetUpdatesParams) ([]models.Update, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()

	<-started
	_, err := b.OnMessage(func(ctx context.Context, b *Bot, u *models.Update) {})
	assert.ErrorIs(t, err, ErrRunning)

	mw := func(next Handler) Handler { return next }
	assert.ErrorIs(t, b.Use(mw), ErrRunning)

	cancel()
	require.NoError(t, <-done)
}

// ── long polling ─────────────────────────────────────────────────────────────

func TestBot_Polling_OffsetAdvances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockUpdatesAPI(ctrl)
	b := New(nil, WithUpdatesAPI(api), WithPollTimeout(1), WithWorkers(1))

	handled := make(chan int64, 2)
	_, err := b.OnMessage(func(ctx context.Context, b *Bot, u *models.Update) {
		handled <- u.UpdateID
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	first := api.EXPECT().GetUpdates(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params *models.GetUpdatesParams) ([]models.Update, error) {
			assert.Zero(t, params.Offset)
			return []models.Update{
				messageUpdate(101, "one"),
				messageUpdate(102, "two"),
			}, nil
		})
	second := api.EXPECT().GetUpdates(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params *models.GetUpdatesParams) ([]models.Update, error) {
			assert.Equal(t, int64(103), params.Offset)
			cancel()
			return nil, nil
		})
	gomock.InOrder(
		api.EXPECT().DeleteWebhook(gomock.Any(), gomock.Any()).Return(true, nil),
		first,
		second,
	)

	require.NoError(t, b.Run(ctx))

	close(handled)
	var ids []int64
	for id := range handled {
		ids = append(ids, id)
	}
	assert.ElementsMatch(t, []int64{101, 102}, ids)
}

func TestBot_Polling_ErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockUpdatesAPI(ctrl)
	b := New(nil, WithUpdatesAPI(api), WithPollTimeout(1))

	ctx, cancel := context.WithCancel(context.Background())
	api.EXPECT().DeleteWebhook(gomock.Any(), gomock.Any()).Return(true, nil)
	api.EXPECT().GetUpdates(gomock.Any(), gomock.Any()).DoAndReturn(
		func(gctx context.Context, _ *models.GetUpdatesParams) ([]models.Update, error) {
			cancel()
			return nil, assert.AnError
		})

	// The failed call must not kill the loop before the context does.
	require.NoError(t, b.Run(ctx))
}

func TestBot_Run_AlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockUpdatesAPI(ctrl)
	b := New(nil, WithUpdatesAPI(api), WithPollTimeout(1))

	started := make(chan struct{})
	api.EXPECT().DeleteWebhook(gomock.Any(), gomock.Any()).Return(true, nil)
	api.EXPECT().GetUpdates(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ *models.GetUpdatesParams) ([]models.Update, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()
	<-started

	assert.ErrorIs(t, b.Run(ctx), ErrAlreadyRunning)

	b.Stop()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Stop did not terminate Run")
	}
}
