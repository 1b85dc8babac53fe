// Package schedule arranges appointments into the views each role works
// from and resolves day-level slot availability.
package schedule

import (
	"sort"
	"time"

	"glowbook/internal/models"
)

// StaffView splits a staff member's feed into their own upcoming work and
// the unassigned pool they can claim from.
type StaffView struct {
	Mine       []models.Appointment
	Unassigned []models.Appointment
}

// ForStaff partitions appointments for one staff member. Both lists hold
// upcoming appointments only, soonest first.
func ForStaff(appts []models.Appointment, staffID string, now time.Time) StaffView {
	var view StaffView
	for _, appt := range appts {
		if !appt.Upcoming(now) {
			continue
		}
		switch {
		case appt.StaffID != nil && *appt.StaffID == staffID:
			view.Mine = append(view.Mine, appt)
		case !appt.Assigned() && appt.Status == models.StatusPending:
			view.Unassigned = append(view.Unassigned, appt)
		}
	}
	sortAscending(view.Mine)
	sortAscending(view.Unassigned)
	return view
}

// BusinessView buckets a business's appointments for the owner dashboard.
type BusinessView struct {
	Upcoming  []models.Appointment // PENDING and CONFIRMED, soonest first
	Completed []models.Appointment // COMPLETED and NO_SHOW, newest first
	Cancelled []models.Appointment // CANCELLED, newest first
}

// ForBusiness buckets by status. Active work reads top-down in visit order;
// history reads newest first.
func ForBusiness(appts []models.Appointment) BusinessView {
	var view BusinessView
	for _, appt := range appts {
		switch appt.Status {
		case models.StatusPending, models.StatusConfirmed:
			view.Upcoming = append(view.Upcoming, appt)
		case models.StatusCompleted, models.StatusNoShow:
			view.Completed = append(view.Completed, appt)
		case models.StatusCancelled:
			view.Cancelled = append(view.Cancelled, appt)
		}
	}
	sortAscending(view.Upcoming)
	sortDescending(view.Completed)
	sortDescending(view.Cancelled)
	return view
}

// CustomerView splits a customer's history around now.
type CustomerView struct {
	Upcoming []models.Appointment
	Past     []models.Appointment
}

// ForCustomer puts future non-cancelled appointments under Upcoming;
// everything else, cancelled ones included, lands in Past.
func ForCustomer(appts []models.Appointment, now time.Time) CustomerView {
	var view CustomerView
	for _, appt := range appts {
		if appt.Upcoming(now) && appt.Status != models.StatusCancelled {
			view.Upcoming = append(view.Upcoming, appt)
		} else {
			view.Past = append(view.Past, appt)
		}
	}
	sortAscending(view.Upcoming)
	sortDescending(view.Past)
	return view
}

func sortAscending(appts []models.Appointment) {
	sort.SliceStable(appts, func(i, j int) bool {
		return appts[i].Date.Before(appts[j].Date)
	})
}

func sortDescending(appts []models.Appointment) {
	sort.SliceStable(appts, func(i, j int) bool {
		return appts[i].Date.After(appts[j].Date)
	})
}
