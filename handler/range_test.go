package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRangeHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		size      int64
		wantStart int64
		wantEnd   int64
		wantErr   bool
	}{
		{"first 100 bytes", "bytes=0-99", 1000, 0, 99, false},
		{"open ended", "bytes=900-", 1000, 900, 999, false},
		{"single byte", "bytes=5-5", 1000, 5, 5, false},
		{"end clamped to size", "bytes=0-1999", 1000, 0, 999, false},
		{"whole object", "bytes=0-", 1000, 0, 999, false},
		{"multi range takes first", "bytes=0-1,5-6", 1000, 0, 1, false},
		{"start at eof", "bytes=1000-", 1000, 0, 0, true},
		{"start past eof", "bytes=5000-", 1000, 0, 0, true},
		{"start after end", "bytes=10-5", 1000, 0, 0, true},
		{"suffix range unsupported", "bytes=-500", 1000, 0, 0, true},
		{"wrong unit", "items=0-5", 1000, 0, 0, true},
		{"garbage", "bytes=abc-def", 1000, 0, 0, true},
		{"empty interval", "bytes=", 1000, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := parseRangeHeader(tt.header, tt.size)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
