package live

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)
	t.Cleanup(cancel)
	return h, cancel
}

func receive(t *testing.T, s *Subscriber) ([]byte, bool) {
	t.Helper()
	select {
	case msg, ok := <-s.Send:
		return msg, ok
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a fragment")
		return nil, false
	}
}

func TestHub_Broadcast(t *testing.T) {
	h, _ := startHub(t)
	a := h.Subscribe()
	b := h.Subscribe()
	require.NotNil(t, a)
	require.NotNil(t, b)

	h.Broadcast([]byte("<div>1</div>"))

	msg, ok := receive(t, a)
	assert.True(t, ok)
	assert.Equal(t, "<div>1</div>", string(msg))
	msg, _ = receive(t, b)
	assert.Equal(t, "<div>1</div>", string(msg))
}

func TestHub_Unsubscribe(t *testing.T) {
	h, _ := startHub(t)
	s := h.Subscribe()

	h.Unsubscribe(s)
	_, ok := receive(t, s)
	assert.False(t, ok, "Send is closed")

	// A second call is a no-op.
	h.Unsubscribe(s)
}

func TestHub_DropsSlowSubscriber(t *testing.T) {
	h, _ := startHub(t)
	slow := h.Subscribe()

	for i := 0; i < SendBuffer; i++ {
		h.Broadcast([]byte("x"))
	}
	require.Eventually(t, func() bool {
		return len(slow.Send) == SendBuffer
	}, 2*time.Second, time.Millisecond)

	h.Broadcast([]byte("overflow"))

	n := 0
	timeout := time.After(2 * time.Second)
	for closed := false; !closed; {
		select {
		case msg, ok := <-slow.Send:
			if !ok {
				closed = true
				break
			}
			assert.Equal(t, "x", string(msg))
			n++
		case <-timeout:
			t.Fatalf("subscriber not closed after overflow, drained %d", n)
		}
	}
	assert.Equal(t, SendBuffer, n, "the subscriber is closed after its buffer overflows")
}

func TestHub_Stop(t *testing.T) {
	h, cancel := startHub(t)
	s := h.Subscribe()

	cancel()
	_, ok := receive(t, s)
	assert.False(t, ok, "subscribers are closed on shutdown")

	assert.Nil(t, h.Subscribe())
	h.Unsubscribe(s)
}
