package logger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func resetGlobalLogger() {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = nil
}

func TestGetGlobalLogger_LazyFallbackIsSingleInstance(t *testing.T) {
	resetGlobalLogger()
	t.Cleanup(resetGlobalLogger)

	const callers = 16
	loggers := make([]*ZapLogger, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			loggers[i] = GetGlobalLogger()
		}(i)
	}
	wg.Wait()

	require.NotNil(t, loggers[0])
	for i := 1; i < callers; i++ {
		assert.Same(t, loggers[0], loggers[i])
	}
}

func TestSetGlobalLogger(t *testing.T) {
	resetGlobalLogger()
	t.Cleanup(resetGlobalLogger)

	zl := &ZapLogger{Logger: zap.NewNop(), sugar: zap.NewNop().Sugar()}
	SetGlobalLogger(zl)

	assert.Same(t, zl, GetGlobalLogger())
}
