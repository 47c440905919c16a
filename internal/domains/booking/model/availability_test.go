package model_test

import (
	"testing"
	"time"

	"hotel/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}

	return t
}

func stay(id, room int64, checkIn, checkOut, status string) model.Booking {
	return model.Booking{ID: id, RoomID: room, CheckIn: day(checkIn), CheckOut: day(checkOut), Status: status}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name       string
		a, b       [2]string
		wantResult bool
	}{
		{"identical", [2]string{"2025-06-01", "2025-06-03"}, [2]string{"2025-06-01", "2025-06-03"}, true},
		{"starts inside", [2]string{"2025-06-01", "2025-06-03"}, [2]string{"2025-06-02", "2025-06-04"}, true},
		{"encloses", [2]string{"2025-06-01", "2025-06-10"}, [2]string{"2025-06-03", "2025-06-04"}, true},
		{"back to back", [2]string{"2025-06-01", "2025-06-03"}, [2]string{"2025-06-03", "2025-06-05"}, false},
		{"before", [2]string{"2025-06-05", "2025-06-07"}, [2]string{"2025-06-01", "2025-06-05"}, false},
		{"disjoint", [2]string{"2025-06-01", "2025-06-02"}, [2]string{"2025-07-01", "2025-07-02"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.Overlaps(day(tt.a[0]), day(tt.a[1]), day(tt.b[0]), day(tt.b[1]))
			assert.Equal(t, tt.wantResult, got)

			// the law is symmetric
			assert.Equal(t, got, model.Overlaps(day(tt.b[0]), day(tt.b[1]), day(tt.a[0]), day(tt.a[1])))
		})
	}
}

func TestOverlaps_IgnoresZone(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)

	checkIn := time.Date(2025, 6, 3, 0, 0, 0, 0, jakarta)
	checkOut := time.Date(2025, 6, 5, 0, 0, 0, 0, jakarta)

	assert.False(t, model.Overlaps(checkIn, checkOut, day("2025-06-01"), day("2025-06-03")))
}

func TestFindConflict_Scenario(t *testing.T) {
	var stored []model.Booking

	book := func(id int64, checkIn, checkOut string) bool {
		candidate := stay(0, 1, checkIn, checkOut, model.StatusConfirmed)
		if _, found := model.FindConflict(candidate, stored); found {
			return false
		}

		candidate.ID = id
		stored = append(stored, candidate)

		return true
	}

	assert.True(t, book(1, "2025-06-01", "2025-06-03"))
	assert.False(t, book(2, "2025-06-02", "2025-06-04"))
	assert.True(t, book(3, "2025-06-03", "2025-06-05"))
	assert.Len(t, stored, 2)
}

func TestFindConflict(t *testing.T) {
	existing := []model.Booking{
		stay(1, 1, "2025-06-01", "2025-06-05", model.StatusCancelled),
		stay(2, 2, "2025-06-01", "2025-06-05", model.StatusConfirmed),
		stay(3, 1, "2025-06-10", "2025-06-12", model.StatusCheckedOut),
	}

	t.Run("cancelled and other rooms do not block", func(t *testing.T) {
		_, found := model.FindConflict(stay(0, 1, "2025-06-02", "2025-06-04", model.StatusConfirmed), existing)
		assert.False(t, found)
	})

	t.Run("checked-out stays still block their dates", func(t *testing.T) {
		other, found := model.FindConflict(stay(0, 1, "2025-06-11", "2025-06-13", model.StatusConfirmed), existing)
		assert.True(t, found)
		assert.Equal(t, int64(3), other.ID)
	})

	t.Run("a booking never conflicts with itself", func(t *testing.T) {
		_, found := model.FindConflict(stay(3, 1, "2025-06-10", "2025-06-12", model.StatusConfirmed), existing)
		assert.False(t, found)
	})
}
