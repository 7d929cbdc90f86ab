package telemetry

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		opts    Options
		wantErr bool
		check   func(t *testing.T, out []byte)
	}{
		{
			name: "json logs from env",
			env:  map[string]string{"RAVEN_LOG_FORMAT": "json", "RAVEN_LOG_LEVEL": "debug"},
			opts: Options{ServiceName: "raven"},
			check: func(t *testing.T, out []byte) {
				t.Helper()
				var entry map[string]any
				require.NoError(t, json.Unmarshal(out, &entry))
				assert.Equal(t, "debug", entry["level"])
				assert.Equal(t, "raven.ecs", entry["component"])
				assert.Equal(t, "hello", entry["message"])
			},
		},
		{
			name: "options override env",
			env:  map[string]string{"RAVEN_LOG_FORMAT": "pretty", "RAVEN_LOG_LEVEL": "debug"},
			opts: Options{ServiceName: "raven", LogFormat: LogFormatJSON, LogLevel: "warn"},
			check: func(t *testing.T, out []byte) {
				t.Helper()
				assert.Empty(t, out, "debug entry should be filtered at warn")
			},
		},
		{
			name: "pretty output is not json",
			env:  map[string]string{"RAVEN_LOG_FORMAT": "pretty", "RAVEN_LOG_LEVEL": "debug"},
			opts: Options{ServiceName: "raven"},
			check: func(t *testing.T, out []byte) {
				t.Helper()
				assert.Contains(t, string(out), "hello")
				assert.False(t, json.Valid(out))
			},
		},
		{
			name:    "invalid level",
			env:     map[string]string{"RAVEN_LOG_LEVEL": "loud"},
			opts:    Options{ServiceName: "raven"},
			wantErr: true,
		},
		{
			name:    "invalid format",
			env:     map[string]string{"RAVEN_LOG_FORMAT": "xml"},
			opts:    Options{ServiceName: "raven"},
			wantErr: true,
		},
		{
			name:    "invalid level option",
			opts:    Options{ServiceName: "raven", LogLevel: "loud"},
			wantErr: true,
		},
		{
			name:    "missing service name",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// t.Setenv forbids t.Parallel.
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			var buf bytes.Buffer
			tel, err := NewWithWriter(tc.opts, &buf)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			logger := tel.GetLogger("ecs")
			logger.Debug().Msg("hello")
			tc.check(t, buf.Bytes())
		})
	}
}

func TestParseLogFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, LogFormatJSON, ParseLogFormat("JSON"))
	assert.Equal(t, LogFormatPretty, ParseLogFormat("pretty"))
	assert.Equal(t, LogFormatUndefined, ParseLogFormat("yaml"))
	assert.Equal(t, "pretty", LogFormatPretty.String())
	assert.Equal(t, "undefined", LogFormat(42).String())

	var f LogFormat
	require.NoError(t, f.UnmarshalText([]byte("Json")))
	assert.Equal(t, LogFormatJSON, f)
	require.Error(t, f.UnmarshalText([]byte("xml")))
	assert.Equal(t, LogFormatJSON, f)
}
