package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_DefaultsToJSONInfo(t *testing.T) {
	logger, err := NewLogger(LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestFieldsReachZapCore(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	logger := NewLoggerFromCore(core)

	logger.Info("question analyzed",
		String("category", "刑事"),
		Int("keywords", 7),
		Float64("top_score", 0.82),
		Bool("cached", false),
	)

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "question analyzed", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "刑事", fields["category"])
	assert.EqualValues(t, 7, fields["keywords"])
}

func TestWith_ChildCarriesFields(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	logger := NewLoggerFromCore(core).With(String("component", "search"))

	logger.Warn("retrieval degraded")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "search", entries[0].ContextMap()["component"])
}

func TestErr_NilError(t *testing.T) {
	f := Err(nil)
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "<nil>", f.Value)
}

func TestNopLogger_DoesNotPanic(t *testing.T) {
	logger := NewNopLogger()
	logger.Debug("a")
	logger.Info("b", String("k", "v"))
	logger.Warn("c")
	logger.Error("d", Err(nil))
	logger.With(Int("n", 1)).Named("x").Info("e")
}
