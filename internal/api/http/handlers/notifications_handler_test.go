package handlers

import (
	"bufio"
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type brokenConn struct{}

func (brokenConn) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestPumpEventsForwardsPayloadsAndKeepAlives(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	messages := make(chan string, 2)
	ticks := make(chan time.Time, 1)

	messages <- `{"id":"n1"}`
	ticks <- time.Now()
	messages <- `{"id":"n2"}`
	close(messages)

	pumpEvents(w, messages, ticks)

	out := buf.String()
	require.Contains(t, out, "data: {\"id\":\"n1\"}\n\n")
	require.Contains(t, out, "data: {\"id\":\"n2\"}\n\n")
	require.Contains(t, out, ": keep-alive\n\n")
}

func TestPumpEventsStopsOnDeadConnection(t *testing.T) {
	w := bufio.NewWriter(brokenConn{})
	messages := make(chan string)
	ticks := make(chan time.Time, 1)

	done := make(chan struct{})
	go func() {
		pumpEvents(w, messages, ticks)
		close(done)
	}()

	// No payload ever arrives; the keep-alive write is what surfaces the
	// broken peer and lets the pump exit.
	ticks <- time.Now()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pump kept running after the connection died")
	}
}
