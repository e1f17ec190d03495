package booking

import (
	"reflect"
	"testing"
	"time"

	"lensbook/models"
)

func june21(slots ...models.TimeSlot) []models.DateSlot {
	return []models.DateSlot{{Date: "2025-06-21", TimeSlots: slots}}
}

func TestFilterAvailableSlots_DropsZeroCapacity(t *testing.T) {
	dates := june21(
		models.TimeSlot{StartTime: "09:00", EndTime: "10:00", Capacity: 1},
		models.TimeSlot{StartTime: "09:00", EndTime: "10:00", Capacity: 0},
	)
	// 03:00Z is 08:30 IST, before the 09:00 slot.
	now := time.Date(2025, 6, 21, 3, 0, 0, 0, time.UTC)

	got := FilterAvailableSlots(dates, "2025-06-21", now)
	want := []models.TimeSlot{{StartTime: "09:00", EndTime: "10:00", Capacity: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestFilterAvailableSlots_Conditions(t *testing.T) {
	now := time.Date(2025, 6, 21, 12, 0, 0, 0, IST)

	tests := []struct {
		name string
		slot models.TimeSlot
		want bool
	}{
		{"future open slot", models.TimeSlot{StartTime: "15:00", EndTime: "16:00", Capacity: 2}, true},
		{"starts exactly now", models.TimeSlot{StartTime: "12:00", EndTime: "13:00", Capacity: 1}, true},
		{"already started", models.TimeSlot{StartTime: "11:59", EndTime: "13:00", Capacity: 1}, false},
		{"booked", models.TimeSlot{StartTime: "15:00", EndTime: "16:00", Capacity: 1, IsBooked: true}, false},
		{"no capacity", models.TimeSlot{StartTime: "15:00", EndTime: "16:00", Capacity: 0}, false},
		{"negative capacity", models.TimeSlot{StartTime: "15:00", EndTime: "16:00", Capacity: -1}, false},
		{"unparsable start", models.TimeSlot{StartTime: "noon", EndTime: "16:00", Capacity: 1}, false},
		{"hour out of range", models.TimeSlot{StartTime: "25:00", EndTime: "26:00", Capacity: 1}, false},
		{"empty start", models.TimeSlot{StartTime: "", EndTime: "16:00", Capacity: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAvailableSlots(june21(tt.slot), "2025-06-21", now)
			if present := len(got) == 1; present != tt.want {
				t.Fatalf("slot present = %v, want %v (result %+v)", present, tt.want, got)
			}
		})
	}
}

func TestFilterAvailableSlots_PreservesOrder(t *testing.T) {
	dates := june21(
		models.TimeSlot{StartTime: "16:00", EndTime: "17:00", Capacity: 1},
		models.TimeSlot{StartTime: "08:00", EndTime: "09:00", Capacity: 1},
		models.TimeSlot{StartTime: "10:00", EndTime: "11:00", Capacity: 1},
	)
	now := time.Date(2025, 6, 20, 0, 0, 0, 0, IST)

	got := FilterAvailableSlots(dates, "2025-06-21", now)
	var starts []string
	for _, s := range got {
		starts = append(starts, s.StartTime)
	}
	want := []string{"16:00", "08:00", "10:00"}
	if !reflect.DeepEqual(starts, want) {
		t.Fatalf("order = %v, want %v", starts, want)
	}
}

func TestFilterAvailableSlots_MissingOrEmptyDate(t *testing.T) {
	dates := june21(models.TimeSlot{StartTime: "09:00", EndTime: "10:00", Capacity: 1})
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for _, date := range []string{"", "2025-06-22", "2025-6-21"} {
		got := FilterAvailableSlots(dates, date, now)
		if got == nil || len(got) != 0 {
			t.Fatalf("date %q: got %#v, want empty non-nil slice", date, got)
		}
	}
	if got := FilterAvailableSlots(nil, "2025-06-21", now); got == nil || len(got) != 0 {
		t.Fatalf("nil dates: got %#v, want empty non-nil slice", got)
	}
}

func TestFilterAvailableSlots_Idempotent(t *testing.T) {
	dates := june21(
		models.TimeSlot{StartTime: "09:00", EndTime: "10:00", Capacity: 1},
		models.TimeSlot{StartTime: "11:00", EndTime: "12:00", Capacity: 3},
	)
	now := time.Date(2025, 6, 21, 3, 0, 0, 0, time.UTC)

	first := FilterAvailableSlots(dates, "2025-06-21", now)
	second := FilterAvailableSlots(dates, "2025-06-21", now)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
}

func TestFilterAvailableSlots_MonotonicInNow(t *testing.T) {
	slot := models.TimeSlot{StartTime: "09:00", EndTime: "10:00", Capacity: 1}
	dates := june21(slot)
	start := time.Date(2025, 6, 21, 9, 0, 0, 0, IST)

	if got := FilterAvailableSlots(dates, "2025-06-21", start.Add(-time.Minute)); len(got) != 1 {
		t.Fatalf("before start: got %d slots, want 1", len(got))
	}
	if got := FilterAvailableSlots(dates, "2025-06-21", start.Add(time.Second)); len(got) != 0 {
		t.Fatalf("after start: got %d slots, want 0", len(got))
	}
}

func TestIsSlotInPast_AgreesWithFilter(t *testing.T) {
	slots := []models.TimeSlot{
		{StartTime: "08:00", EndTime: "09:00", Capacity: 1},
		{StartTime: "12:00", EndTime: "13:00", Capacity: 1},
		{StartTime: "18:30", EndTime: "19:30", Capacity: 1},
		{StartTime: "bogus", EndTime: "19:30", Capacity: 1},
	}
	now := time.Date(2025, 6, 21, 12, 0, 0, 0, IST)
	available := FilterAvailableSlots(june21(slots...), "2025-06-21", now)

	inResult := map[string]bool{}
	for _, s := range available {
		inResult[s.StartTime] = true
	}
	for _, s := range slots {
		past := IsSlotInPast(s, "2025-06-21", now)
		if past == inResult[s.StartTime] {
			t.Errorf("slot %s: IsSlotInPast=%v but present in filter=%v", s.StartTime, past, inResult[s.StartTime])
		}
	}
}

func TestIsSlotInPast_UsesFixedOffset(t *testing.T) {
	slot := models.TimeSlot{StartTime: "09:00", EndTime: "10:00", Capacity: 1}
	// 09:00 IST is 03:30 UTC.
	if IsSlotInPast(slot, "2025-06-21", time.Date(2025, 6, 21, 3, 29, 0, 0, time.UTC)) {
		t.Fatalf("03:29Z should be before 09:00 IST")
	}
	if !IsSlotInPast(slot, "2025-06-21", time.Date(2025, 6, 21, 3, 31, 0, 0, time.UTC)) {
		t.Fatalf("03:31Z should be after 09:00 IST")
	}

	utc := SlotFilter{Location: time.UTC}
	if utc.IsSlotInPast(slot, "2025-06-21", time.Date(2025, 6, 21, 8, 59, 0, 0, time.UTC)) {
		t.Fatalf("UTC filter: 08:59Z should be before 09:00Z")
	}
}

func TestViews_MarksEverySlot(t *testing.T) {
	dates := june21(
		models.TimeSlot{StartTime: "08:00", EndTime: "09:00", Capacity: 1},
		models.TimeSlot{StartTime: "15:00", EndTime: "16:00", Capacity: 0},
		models.TimeSlot{StartTime: "17:00", EndTime: "18:00", Capacity: 2},
	)
	now := time.Date(2025, 6, 21, 12, 0, 0, 0, IST)

	views := DefaultSlotFilter.Views(dates, "2025-06-21", now)
	if len(views) != 3 {
		t.Fatalf("got %d views, want 3", len(views))
	}
	want := []struct{ past, selectable bool }{{true, false}, {false, false}, {false, true}}
	for i, v := range views {
		if v.Past != want[i].past || v.Selectable != want[i].selectable {
			t.Errorf("view %d (%s): past=%v selectable=%v, want %v/%v",
				i, v.StartTime, v.Past, v.Selectable, want[i].past, want[i].selectable)
		}
	}
}

func TestFindSlot(t *testing.T) {
	dates := june21(models.TimeSlot{StartTime: "09:00", EndTime: "10:00", Capacity: 1})
	if _, ok := FindSlot(dates, "2025-06-21", "09:00"); !ok {
		t.Fatalf("expected 09:00 to be found")
	}
	if _, ok := FindSlot(dates, "2025-06-21", "10:00"); ok {
		t.Fatalf("did not expect 10:00 to be found")
	}
	if _, ok := FindSlot(dates, "2025-06-22", "09:00"); ok {
		t.Fatalf("did not expect a slot on 2025-06-22")
	}
}
