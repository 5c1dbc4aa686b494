package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{in: "debug", want: DebugLevel},
		{in: "INFO", want: InfoLevel},
		{in: "", want: InfoLevel},
		{in: "warning", want: WarnLevel},
		{in: "error", want: ErrorLevel},
		{in: "loud", want: InfoLevel, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestZerologAdapter_WritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, DebugLevel).WithComponent("store")

	log.Error("save failed", errors.New("disk full"), map[string]interface{}{"title": "spanish"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "store", entry["component"])
	assert.Equal(t, "spanish", entry["title"])
	assert.Equal(t, "disk full", entry["error"])
	assert.Equal(t, "save failed", entry["message"])
	assert.Equal(t, "error", entry["level"])
}

func TestZerologAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, WarnLevel)

	log.Info("ignored", nil)
	log.Debug("ignored", nil)
	assert.Zero(t, buf.Len())

	log.Warning("kept", nil)
	assert.Contains(t, buf.String(), "kept")
}
