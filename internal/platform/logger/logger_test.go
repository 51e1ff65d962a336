package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("writes json entries", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(&buf, "info")
		log.Info("case record created", "order_id", "1000123")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "case record created", entry["msg"])
		assert.Equal(t, "1000123", entry["order_id"])
	})

	t.Run("debug entries suppressed at info", func(t *testing.T) {
		var buf bytes.Buffer
		NewWithWriter(&buf, "").Debug("payment inspected")
		assert.Zero(t, buf.Len())
	})

	t.Run("debug level enables debug entries", func(t *testing.T) {
		var buf bytes.Buffer
		NewWithWriter(&buf, "DEBUG").Debug("payment inspected")
		assert.NotZero(t, buf.Len())
	})
}
