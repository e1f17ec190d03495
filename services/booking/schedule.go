package booking

import (
	"fmt"
	"sort"
	"time"

	"lensbook/models"
)

// ValidateSchedule checks a vendor-supplied schedule before it is stored.
func ValidateSchedule(dates []models.DateSlot) error {
	seen := make(map[string]bool, len(dates))
	for i, d := range dates {
		field := fmt.Sprintf("availableDates[%d]", i)
		if _, err := time.Parse("2006-01-02", d.Date); err != nil || len(d.Date) != len("2006-01-02") {
			return NewInvalidInputError(field+".date", fmt.Sprintf("%q is not a YYYY-MM-DD date", d.Date))
		}
		if seen[d.Date] {
			return NewInvalidInputError(field+".date", fmt.Sprintf("%s is listed more than once", d.Date))
		}
		seen[d.Date] = true

		if err := validateDaySlots(field, d.TimeSlots); err != nil {
			return err
		}
	}
	return nil
}

func validateDaySlots(field string, slots []models.TimeSlot) error {
	for j, s := range slots {
		slotField := fmt.Sprintf("%s.timeSlots[%d]", field, j)
		if !isClock(s.StartTime) {
			return NewInvalidInputError(slotField+".startTime", fmt.Sprintf("%q is not a zero-padded HH:MM time", s.StartTime))
		}
		if !isClock(s.EndTime) {
			return NewInvalidInputError(slotField+".endTime", fmt.Sprintf("%q is not a zero-padded HH:MM time", s.EndTime))
		}
		if s.StartTime >= s.EndTime {
			return NewInvalidInputError(slotField, "startTime must be before endTime")
		}
		if s.Capacity < 0 {
			return NewInvalidInputError(slotField+".capacity", "must not be negative")
		}
	}

	ordered := make([]models.TimeSlot, len(slots))
	copy(ordered, slots)
	sort.Slice(ordered, func(a, b int) bool { return ordered[a].StartTime < ordered[b].StartTime })
	for k := 1; k < len(ordered); k++ {
		prev, cur := ordered[k-1], ordered[k]
		if cur.StartTime < prev.EndTime {
			return NewInvalidInputError(field+".timeSlots",
				fmt.Sprintf("%s-%s overlaps %s-%s", prev.StartTime, prev.EndTime, cur.StartTime, cur.EndTime))
		}
	}
	return nil
}

// isClock accepts only zero-padded 24h times, so string order matches time order.
func isClock(s string) bool {
	if len(s) != len("15:04") {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
