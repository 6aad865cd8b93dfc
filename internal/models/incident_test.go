package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncidentTimestamp(t *testing.T) {
	incident := &Incident{CaseNumber: "23000123", Date: "2023-01-15", Time: "21:04:30"}

	ts, err := incident.Timestamp()

	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.January, 15, 21, 4, 30, 0, time.UTC), ts)
}

func TestIncidentTimestamp_Invalid(t *testing.T) {
	incident := &Incident{CaseNumber: "23000123", Date: "2023-02-30", Time: "21:04:30"}

	_, err := incident.Timestamp()

	require.Error(t, err)
	assert.ErrorContains(t, err, "23000123")
}

func TestValidationError(t *testing.T) {
	var err error = NewValidationError("limit", "must be a positive integer")

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "limit", vErr.Field)
	assert.Equal(t, "limit must be a positive integer", err.Error())
}
