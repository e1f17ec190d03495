package booking

import (
	"testing"

	"lensbook/models"
)

func TestValidateSchedule(t *testing.T) {
	slot := func(start, end string, capacity int) models.TimeSlot {
		return models.TimeSlot{StartTime: start, EndTime: end, Capacity: capacity}
	}

	tests := []struct {
		name    string
		dates   []models.DateSlot
		wantErr bool
	}{
		{"empty schedule", nil, false},
		{"valid day", []models.DateSlot{{Date: "2025-06-21", TimeSlots: []models.TimeSlot{
			slot("09:00", "10:00", 1), slot("10:00", "11:30", 2),
		}}}, false},
		{"unsorted but disjoint", []models.DateSlot{{Date: "2025-06-21", TimeSlots: []models.TimeSlot{
			slot("14:00", "15:00", 1), slot("09:00", "10:00", 1),
		}}}, false},
		{"bad date", []models.DateSlot{{Date: "21-06-2025"}}, true},
		{"unpadded date", []models.DateSlot{{Date: "2025-6-21"}}, true},
		{"duplicate date", []models.DateSlot{{Date: "2025-06-21"}, {Date: "2025-06-21"}}, true},
		{"unpadded time", []models.DateSlot{{Date: "2025-06-21", TimeSlots: []models.TimeSlot{slot("9:00", "10:00", 1)}}}, true},
		{"end before start", []models.DateSlot{{Date: "2025-06-21", TimeSlots: []models.TimeSlot{slot("11:00", "10:00", 1)}}}, true},
		{"zero length", []models.DateSlot{{Date: "2025-06-21", TimeSlots: []models.TimeSlot{slot("10:00", "10:00", 1)}}}, true},
		{"negative capacity", []models.DateSlot{{Date: "2025-06-21", TimeSlots: []models.TimeSlot{slot("10:00", "11:00", -1)}}}, true},
		{"overlap", []models.DateSlot{{Date: "2025-06-21", TimeSlots: []models.TimeSlot{
			slot("09:00", "10:30", 1), slot("10:00", "11:00", 1),
		}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchedule(tt.dates)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateSchedule() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !IsInvalidInput(err) {
				t.Fatalf("error %v is not an InvalidInputError", err)
			}
		})
	}
}
