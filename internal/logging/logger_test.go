package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard(t *testing.T) {
	t.Cleanup(func() { SetOutput(io.Discard, "info") })
}

// syncBuffer guards a bytes.Buffer so concurrent writers can share it
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestHelpersAreSafeBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		Info("info")
		Debug("debug")
		Warn("warn")
		Error("error")
	})
}

func TestSetOutputRespectsLevel(t *testing.T) {
	discard(t)
	var buf bytes.Buffer
	SetOutput(&buf, "warn")

	Info("hidden message")
	Warn("visible message", "seq", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden message")
	assert.Contains(t, out, "visible message")
	assert.Contains(t, out, "seq=3")
}

func TestSetOutputUnknownLevelFallsBackToInfo(t *testing.T) {
	discard(t)
	var buf bytes.Buffer
	SetOutput(&buf, "chatty")

	Debug("debug line")
	Info("info line")

	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}

func TestSetOutputKeepsLoggerInstance(t *testing.T) {
	discard(t)
	before := Logger
	SetOutput(io.Discard, "debug")
	assert.Same(t, before, Logger)
}

func TestReconfigureWhileLogging(t *testing.T) {
	discard(t)
	first, second := &syncBuffer{}, &syncBuffer{}
	SetOutput(first, "info")

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				Info("config loaded", "path", "config.toml")
			}
		}
	}()

	for i := 0; i < 50; i++ {
		SetOutput(second, "info")
		SetOutput(first, "warn")
	}
	SetOutput(second, "info")
	Info("after reconfigure")
	close(stop)
	wg.Wait()

	assert.Contains(t, second.String(), "after reconfigure")
}

func TestInitWritesToFile(t *testing.T) {
	discard(t)
	path := filepath.Join(t.TempDir(), "nested", "app.log")
	require.NoError(t, Init(path, "debug"))

	Info("search dispatched", "query", "theft")
	Close()
	Info("after close")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "search dispatched")
	assert.Contains(t, string(data), "query=theft")
	assert.NotContains(t, string(data), "after close")
}
