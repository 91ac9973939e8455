package org

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkdaysContains(t *testing.T) {
	assert.True(t, WorkdaysMonToFri.Contains(time.Monday))
	assert.True(t, WorkdaysMonToFri.Contains(time.Friday))
	assert.False(t, WorkdaysMonToFri.Contains(time.Saturday))
	assert.False(t, WorkdaysMonToFri.Contains(time.Sunday))

	weekend := Saturday | Sunday
	assert.True(t, weekend.Contains(time.Sunday))
	assert.False(t, weekend.Contains(time.Wednesday))
}

func TestWorkdaysNamesRoundTrip(t *testing.T) {
	names := WorkdaysMonToFri.Names()
	assert.Equal(t, []string{"monday", "tuesday", "wednesday", "thursday", "friday"}, names)

	parsed, ok := ParseWorkdays(names)
	assert.True(t, ok)
	assert.Equal(t, WorkdaysMonToFri, parsed)
}

func TestParseWorkdaysRejectsUnknownName(t *testing.T) {
	_, ok := ParseWorkdays([]string{"monday", "funday"})
	assert.False(t, ok)
}

func TestParseWorkdaysEmpty(t *testing.T) {
	parsed, ok := ParseWorkdays(nil)
	assert.True(t, ok)
	assert.Equal(t, Workdays(0), parsed)
}
