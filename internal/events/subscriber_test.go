package events

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestLogEvents(t *testing.T) {
	var out lockedBuffer
	logger := slog.New(slog.NewTextHandler(&out, nil))

	publisher, pubSub := NewInMemoryEventPublisher("formbuilder.events", logger)
	defer publisher.Close()

	require.NoError(t, LogEvents(context.Background(), pubSub, "formbuilder.events", logger))

	event := NewEvent(EventResponseSubmitted, ResponseSubmittedEvent{ResponseID: "r1", FormID: "f1", AnswerCount: 1})
	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Eventually(t, func() bool {
		logged := out.String()
		return strings.Contains(logged, "Event received") &&
			strings.Contains(logged, "event_id="+event.ID) &&
			strings.Contains(logged, "event_type=response.submitted")
	}, time.Second, 10*time.Millisecond)
}

func TestLogEvents_SubscribeAfterClose(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	publisher, pubSub := NewInMemoryEventPublisher("formbuilder.events", logger)
	require.NoError(t, publisher.Close())

	assert.Error(t, LogEvents(context.Background(), pubSub, "formbuilder.events", logger))
}
