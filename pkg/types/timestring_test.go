package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeString
		wantErr bool
	}{
		{input: "08:00", want: "08:00"},
		{input: "8:5", want: "08:05"},
		{input: "23:59", want: "23:59"},
		{input: "00:00", want: "00:00"},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "12", wantErr: true},
		{input: "ab:cd", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeStringFromTime(t *testing.T) {
	moment := time.Date(2023, 5, 8, 9, 5, 30, 0, time.UTC)
	assert.Equal(t, TimeString("09:05"), NewTimeStringFromTime(moment))
}

func TestMinutesAndComparison(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 510, TimeString("08:30").Minutes())
	assert.Equal(t, 1439, TimeString("23:59").Minutes())

	assert.True(t, TimeString("08:00").IsBefore("08:01"))
	assert.False(t, TimeString("08:00").IsBefore("08:00"))
	assert.True(t, TimeString("18:00").IsAfter("08:00"))
}

func TestAddMinutes(t *testing.T) {
	got, err := TimeString("08:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:15"), got)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
