package injector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/dimension/internal/config"
	"github.com/zeusync/dimension/internal/core/observability/log"
	"github.com/zeusync/dimension/pkg/quantity"
)

func TestInitializeRuntime(t *testing.T) {
	runtime, err := InitializeRuntime(strings.NewReader("precision: 7\nlog_level: warn\n"))
	require.NoError(t, err)

	assert.Equal(t, 7, runtime.Config.Precision)
	assert.Equal(t, 7, quantity.Precision())
	assert.Equal(t, log.LevelWarn, runtime.Logger.GetLevel())

	runtime.Close()
	assert.Equal(t, quantity.DefaultPrecision, quantity.Precision())
}

func TestInitializeRuntimeRejectsBadConfig(t *testing.T) {
	_, err := InitializeRuntime(strings.NewReader("precision: 40"))
	assert.ErrorIs(t, err, config.ErrInvalidPrecision)
	assert.Equal(t, quantity.DefaultPrecision, quantity.Precision())
}
