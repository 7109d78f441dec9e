package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFocusLog(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	log, err := NewFocusLog(userID, 4, 9, " after coffee ", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "after coffee", log.Notes)
	assert.False(t, log.Date.IsZero(), "zero date should default to now")

	date := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	log, err = NewFocusLog(userID, 1, 0, "", date)
	require.NoError(t, err)
	assert.True(t, log.Date.Equal(date))
}

func TestFocusLogValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		score   int
		hour    int
		wantErr error
	}{
		{"lowest score midnight", 1, 0, nil},
		{"highest score last hour", 5, 23, nil},
		{"score zero", 0, 10, ErrInvalidFocusScore},
		{"score six", 6, 10, ErrInvalidFocusScore},
		{"negative hour", 3, -1, ErrInvalidTimeOfDay},
		{"hour 24", 3, 24, ErrInvalidTimeOfDay},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFocusLog(uuid.New(), tc.score, tc.hour, "", time.Time{})
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tc.wantErr, err)
		})
	}

	_, err := NewFocusLog(uuid.Nil, 3, 3, "", time.Time{})
	assert.Equal(t, ErrFocusLogUserIDEmpty, err)
}
