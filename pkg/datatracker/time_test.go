package datatracker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "canonical layout",
			input: `"2023-02-12T11:09:28"`,
			want:  time.Date(2023, 2, 12, 11, 9, 28, 0, time.UTC),
		},
		{
			name:  "fractional seconds",
			input: `"2023-02-12T11:09:28.128613"`,
			want:  time.Date(2023, 2, 12, 11, 9, 28, 128613000, time.UTC),
		},
		{
			name:  "explicit zone suffix",
			input: `"2023-02-12T11:09:28Z"`,
			want:  time.Date(2023, 2, 12, 11, 9, 28, 0, time.UTC),
		},
		{
			name:  "date only",
			input: `"2023-02-12"`,
			want:  time.Date(2023, 2, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "null is the zero value",
			input: `null`,
		},
		{
			name:  "empty string is the zero value",
			input: `""`,
		},
		{
			name:    "not a string",
			input:   `42`,
			wantErr: true,
		},
		{
			name:    "unparseable text",
			input:   `"not a timestamp"`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Time
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got.Time, tt.want)
		})
	}
}

func TestTime_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   Time
		want string
	}{
		{
			name: "canonical layout",
			in:   NewTime(time.Date(2023, 2, 12, 11, 9, 28, 0, time.UTC)),
			want: `"2023-02-12T11:09:28"`,
		},
		{
			name: "fractional seconds preserved",
			in:   NewTime(time.Date(2023, 2, 12, 11, 9, 28, 128613000, time.UTC)),
			want: `"2023-02-12T11:09:28.128613"`,
		},
		{
			name: "zone pinned to UTC",
			in:   NewTime(time.Date(2023, 2, 12, 12, 9, 28, 0, time.FixedZone("CET", 3600))),
			want: `"2023-02-12T11:09:28"`,
		},
		{
			name: "zero is null",
			in:   Time{},
			want: `null`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestFormatQueryTime(t *testing.T) {
	in := time.Date(2023, 3, 1, 0, 30, 0, 0, time.FixedZone("CET", 3600))
	assert.Equal(t, "2023-02-28T23:30:00", formatQueryTime(in))
}
