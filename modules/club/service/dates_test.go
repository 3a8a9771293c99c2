package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBeautifyDate(t *testing.T) {
	ts := time.Date(2023, time.July, 16, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "Sunday, 16th of July at 15:00", beautifyDate(ts))

	ts = time.Date(2023, time.October, 1, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "Sunday, 1st of October at 09:05", beautifyDate(ts))
}

func TestOrdinalSuffix(t *testing.T) {
	tests := []struct {
		day    int
		suffix string
	}{
		{1, "st"}, {2, "nd"}, {3, "rd"}, {4, "th"},
		{11, "th"}, {12, "th"}, {13, "th"},
		{21, "st"}, {22, "nd"}, {23, "rd"}, {24, "th"},
		{30, "th"}, {31, "st"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.suffix, ordinalSuffix(tt.day), "day %d", tt.day)
	}
}
