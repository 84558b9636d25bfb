package service

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-list/internal/logger"
)

// newBufferedLogger returns a JSON logger writing into buf.
func newBufferedLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf)}
}

// findLogEntry returns the first JSON entry in buf whose key equals value.
func findLogEntry(t *testing.T, buf *bytes.Buffer, key string, value any) map[string]any {
	t.Helper()

	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry), "log line is not JSON: %s", scanner.Text())
		if entry[key] == value {
			return entry
		}
	}
	require.NoError(t, scanner.Err())

	t.Fatalf("no log entry with %s=%v in:\n%s", key, value, buf.String())
	return nil
}
