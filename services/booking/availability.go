package booking

import (
	"time"

	"lensbook/models"
)

const slotLayout = "2006-01-02 15:04"

// IST is the default zone slot times are written in.
var IST = time.FixedZone("IST", 5*60*60+30*60)

// SlotFilter decides which of a service's slots a client may still pick.
// Slot start times are combined with their date in Location.
type SlotFilter struct {
	Location *time.Location
}

// DefaultSlotFilter interprets slot times in IST.
var DefaultSlotFilter = SlotFilter{Location: IST}

// FilterAvailableSlots returns the selectable slots for selectedDate using DefaultSlotFilter.
func FilterAvailableSlots(dateSlots []models.DateSlot, selectedDate string, now time.Time) []models.TimeSlot {
	return DefaultSlotFilter.FilterAvailableSlots(dateSlots, selectedDate, now)
}

// IsSlotInPast reports whether the slot has already started, using DefaultSlotFilter.
func IsSlotInPast(slot models.TimeSlot, selectedDate string, now time.Time) bool {
	return DefaultSlotFilter.IsSlotInPast(slot, selectedDate, now)
}

// FilterAvailableSlots returns, in their configured order, the slots of
// selectedDate that are not booked, have capacity left and start at or after now.
// A missing date yields an empty slice.
func (f SlotFilter) FilterAvailableSlots(dateSlots []models.DateSlot, selectedDate string, now time.Time) []models.TimeSlot {
	available := []models.TimeSlot{}
	if selectedDate == "" {
		return available
	}

	day, ok := findDate(dateSlots, selectedDate)
	if !ok {
		return available
	}

	for _, slot := range day.TimeSlots {
		if f.IsSelectable(slot, selectedDate, now) {
			available = append(available, slot)
		}
	}
	return available
}

// IsSelectable is the per-slot predicate behind FilterAvailableSlots.
func (f SlotFilter) IsSelectable(slot models.TimeSlot, selectedDate string, now time.Time) bool {
	if slot.IsBooked || slot.Capacity <= 0 {
		return false
	}
	return !f.IsSlotInPast(slot, selectedDate, now)
}

// IsSlotInPast reports whether slot starts before now. A start time that
// cannot be parsed counts as past.
func (f SlotFilter) IsSlotInPast(slot models.TimeSlot, selectedDate string, now time.Time) bool {
	start, err := f.SlotStart(selectedDate, slot.StartTime)
	if err != nil {
		return true
	}
	return start.Before(now)
}

// SlotStart combines a date and an "HH:MM" time in the filter's zone.
func (f SlotFilter) SlotStart(date, clock string) (time.Time, error) {
	loc := f.Location
	if loc == nil {
		loc = IST
	}
	return time.ParseInLocation(slotLayout, date+" "+clock, loc)
}

// Views annotates every configured slot of selectedDate with its state.
func (f SlotFilter) Views(dateSlots []models.DateSlot, selectedDate string, now time.Time) []models.SlotView {
	views := []models.SlotView{}
	day, ok := findDate(dateSlots, selectedDate)
	if selectedDate == "" || !ok {
		return views
	}
	for _, slot := range day.TimeSlots {
		views = append(views, models.SlotView{
			TimeSlot:   slot,
			Past:       f.IsSlotInPast(slot, selectedDate, now),
			Selectable: f.IsSelectable(slot, selectedDate, now),
		})
	}
	return views
}

// FindSlot looks up the slot of date starting at startTime.
func FindSlot(dateSlots []models.DateSlot, date, startTime string) (models.TimeSlot, bool) {
	day, ok := findDate(dateSlots, date)
	if !ok {
		return models.TimeSlot{}, false
	}
	for _, slot := range day.TimeSlots {
		if slot.StartTime == startTime {
			return slot, true
		}
	}
	return models.TimeSlot{}, false
}

func findDate(dateSlots []models.DateSlot, date string) (models.DateSlot, bool) {
	for _, d := range dateSlots {
		if d.Date == date {
			return d, true
		}
	}
	return models.DateSlot{}, false
}
