package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portify/portify/adapters/event"
)

type fakeViewCounter struct {
	counts map[string]int64
	err    error
}

func newFakeViewCounter() *fakeViewCounter {
	return &fakeViewCounter{counts: make(map[string]int64)}
}

func (f *fakeViewCounter) Increment(ctx context.Context, slug string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.counts[slug]++
	return f.counts[slug], nil
}

func (f *fakeViewCounter) Views(ctx context.Context, slug string) (int64, error) {
	return f.counts[slug], nil
}

func TestHandleViewEvent_IncrementsCounter(t *testing.T) {
	counter := newFakeViewCounter()

	value, err := json.Marshal(event.PortfolioViewPayload{
		Slug:     "jane-smith",
		ViewedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	require.NoError(t, handleViewEvent(context.Background(), counter, value))
	require.NoError(t, handleViewEvent(context.Background(), counter, value))
	assert.Equal(t, int64(2), counter.counts["jane-smith"])
}

func TestHandleViewEvent_MalformedPayloadIsSkippable(t *testing.T) {
	counter := newFakeViewCounter()

	err := handleViewEvent(context.Background(), counter, []byte("not json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errBadViewEvent)
	assert.Empty(t, counter.counts)
}

func TestHandleViewEvent_MissingSlugIsSkippable(t *testing.T) {
	counter := newFakeViewCounter()

	value, err := json.Marshal(event.PortfolioViewPayload{ViewedAt: time.Now().UTC()})
	require.NoError(t, err)

	err = handleViewEvent(context.Background(), counter, value)
	require.Error(t, err)
	assert.ErrorIs(t, err, errBadViewEvent)
}

func TestHandleViewEvent_CounterFailureIsRetryable(t *testing.T) {
	counter := newFakeViewCounter()
	counter.err = errors.New("redis down")

	value, err := json.Marshal(event.PortfolioViewPayload{
		Slug:     "jane-smith",
		ViewedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	err = handleViewEvent(context.Background(), counter, value)
	require.Error(t, err)
	// Transient failures must not look like poison messages.
	assert.NotErrorIs(t, err, errBadViewEvent)
}
