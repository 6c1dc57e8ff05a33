// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/janderssonse/tradein/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_NopWithoutPath(t *testing.T) {
	t.Parallel()

	logger, err := logging.New("", false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
}

func TestNew_WritesJSONLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.log")

	logger, err := logging.New(path, false)
	require.NoError(t, err)

	logger.Info("session event", zap.String("event", "item_added"), zap.Int("price", 20400))
	logger.Debug("hidden")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "session event", entry["msg"])
	assert.Equal(t, "item_added", entry["event"])
	assert.InDelta(t, 20400, entry["price"], 0)
	assert.Equal(t, "tradein", entry["logger"])
}
