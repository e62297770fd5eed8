package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_RunAndClose(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddress = "127.0.0.1:0"
	s := newTestServer(t, cfg, &fakeSender{})

	assert.False(t, s.IsListening())
	assert.Empty(t, s.Addr())

	done := make(chan error, 1)
	go func() { done <- s.Run() }()

	require.Eventually(t, s.IsListening, 5*time.Second, 10*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://%s/health", s.Addr()))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, s.Close())
	select {
	case err := <-done:
		assert.True(t, errors.Is(err, http.ErrServerClosed), "unexpected error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Close")
	}
	assert.False(t, s.IsListening())
}

func TestServer_CloseBeforeRun(t *testing.T) {
	s := newTestServer(t, testConfig(), &fakeSender{})
	assert.NoError(t, s.Close())
}
