// SPDX-License-Identifier: MIT

package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/peernet/config"
	"github.com/katalvlaran/peernet/logging"
)

func TestNew(t *testing.T) {
	l, err := logging.New(config.Log{Level: "warn"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))

	dev, err := logging.New(config.Log{Level: "debug", Development: true})
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))

	_, err = logging.New(config.Log{Level: "loud"})
	assert.Error(t, err)
}
