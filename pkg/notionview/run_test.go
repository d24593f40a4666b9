package notionview

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRun_shutdownOnCancel(t *testing.T) {
	app := NewWithClients(testConfig(), newStubNotion(t), nil, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestMainEntry_configError(t *testing.T) {
	clearEnv(t)

	err := Main(context.Background(), nil)
	require.ErrorContains(t, err, "failed to parse configuration")
}

func TestMainEntry_runsUntilCancelled(t *testing.T) {
	clearEnv(t)
	t.Setenv("NOTION_API_KEY", "secret_env")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	logFile := filepath.Join(t.TempDir(), "notionview.log")
	require.NoError(t, Main(ctx, []string{"-port", "0", "-log-file", logFile}))
}
