package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/staffsync/timeclock-backend-go/internal/pkg/validator"
)

func TestSubmitRequestValidate(t *testing.T) {
	valid := SubmitRequest{
		LeaveTypeID: "9b4f3c1e-9a1b-4f5e-8f7d-2c3b4a5d6e7f",
		StartDate:   "2026-03-02",
		EndDate:     "2026-03-04",
		Reason:      "vacation",
	}
	assert.NoError(t, valid.Validate())

	inverted := valid
	inverted.StartDate = "2026-03-04"
	inverted.EndDate = "2026-03-02"
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidRange)

	sameDay := valid
	sameDay.EndDate = sameDay.StartDate
	assert.NoError(t, sameDay.Validate())

	badDate := valid
	badDate.StartDate = "02/03/2026"
	var errs validator.ValidationErrors
	assert.ErrorAs(t, badDate.Validate(), &errs)

	missingType := valid
	missingType.LeaveTypeID = ""
	assert.ErrorAs(t, missingType.Validate(), &errs)
}

func TestReviewRequestValidate(t *testing.T) {
	for _, status := range []string{"approved", "rejected"} {
		req := ReviewRequest{ID: "x", Status: status}
		assert.NoError(t, req.Validate())
	}

	var errs validator.ValidationErrors
	bad := ReviewRequest{ID: "x", Status: "pending"}
	assert.ErrorAs(t, bad.Validate(), &errs)
}

func TestRequestOverlaps(t *testing.T) {
	req := Request{
		StartDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	}

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"fully inside", date(2026, 3, 11), date(2026, 3, 12), true},
		{"touching start", date(2026, 3, 1), date(2026, 3, 10), true},
		{"touching end", date(2026, 3, 14), date(2026, 3, 20), true},
		{"before", date(2026, 3, 1), date(2026, 3, 9), false},
		{"after", date(2026, 3, 15), date(2026, 3, 20), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, req.Overlaps(tc.start, tc.end))
		})
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
