package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"glowbook/internal/models"
)

var now = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func mkAppt(id string, staffID *string, status models.AppointmentStatus, date time.Time) models.Appointment {
	return models.Appointment{ID: id, StaffID: staffID, Status: status, Date: date}
}

func strPtr(s string) *string { return &s }

func TestForStaff(t *testing.T) {
	mine := strPtr("staff-1")
	other := strPtr("staff-2")
	appts := []models.Appointment{
		mkAppt("a", mine, models.StatusConfirmed, now.Add(48*time.Hour)),
		mkAppt("b", mine, models.StatusPending, now.Add(2*time.Hour)),
		mkAppt("c", nil, models.StatusPending, now.Add(24*time.Hour)),
		mkAppt("d", other, models.StatusPending, now.Add(3*time.Hour)),
		mkAppt("e", mine, models.StatusCompleted, now.Add(-24*time.Hour)), // past, dropped
		mkAppt("f", nil, models.StatusCancelled, now.Add(6*time.Hour)),    // not claimable
	}

	view := ForStaff(appts, "staff-1", now)

	assert.Equal(t, []string{"b", "a"}, ids(view.Mine))
	assert.Equal(t, []string{"c"}, ids(view.Unassigned))
}

func TestForBusinessBuckets(t *testing.T) {
	appts := []models.Appointment{
		mkAppt("p1", nil, models.StatusPending, now.Add(4*time.Hour)),
		mkAppt("c1", nil, models.StatusConfirmed, now.Add(1*time.Hour)),
		mkAppt("done-old", nil, models.StatusCompleted, now.Add(-72*time.Hour)),
		mkAppt("done-new", nil, models.StatusNoShow, now.Add(-2*time.Hour)),
		mkAppt("x1", nil, models.StatusCancelled, now.Add(-1*time.Hour)),
		mkAppt("x2", nil, models.StatusCancelled, now.Add(-48*time.Hour)),
	}

	view := ForBusiness(appts)

	assert.Equal(t, []string{"c1", "p1"}, ids(view.Upcoming))
	assert.Equal(t, []string{"done-new", "done-old"}, ids(view.Completed))
	assert.Equal(t, []string{"x1", "x2"}, ids(view.Cancelled))
}

func TestForCustomerCancelledFutureGoesToPast(t *testing.T) {
	appts := []models.Appointment{
		mkAppt("up", nil, models.StatusPending, now.Add(24*time.Hour)),
		mkAppt("cancelled-future", nil, models.StatusCancelled, now.Add(48*time.Hour)),
		mkAppt("old", nil, models.StatusCompleted, now.Add(-24*time.Hour)),
	}

	view := ForCustomer(appts, now)

	assert.Equal(t, []string{"up"}, ids(view.Upcoming))
	assert.Equal(t, []string{"cancelled-future", "old"}, ids(view.Past))
}

func TestForCustomerBoundaryIsInclusive(t *testing.T) {
	appts := []models.Appointment{
		mkAppt("exactly-now", nil, models.StatusConfirmed, now),
	}
	view := ForCustomer(appts, now)
	assert.Equal(t, []string{"exactly-now"}, ids(view.Upcoming))
	assert.Empty(t, view.Past)
}

func ids(appts []models.Appointment) []string {
	out := make([]string, 0, len(appts))
	for _, appt := range appts {
		out = append(out, appt.ID)
	}
	return out
}
