package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portal/internal/domains/reservation/service"
	"portal/shared/constant"
	"portal/shared/timezone"
)

func TestTimeSlot(t *testing.T) {
	tests := []struct {
		name      string
		arrival   string
		departure string
		want      string
	}{
		{
			name:      "both sides present",
			arrival:   "2026-02-16T09:00",
			departure: "2026-02-16T11:00",
			want:      "09:00 TO 11:00",
		},
		{
			name:      "missing departure",
			arrival:   "2026-02-16T09:00",
			departure: "",
			want:      "09:00 TO N/A",
		},
		{
			name:      "missing arrival",
			arrival:   "",
			departure: "2026-02-16T11:00",
			want:      "N/A TO 11:00",
		},
		{
			name:      "both missing",
			arrival:   "",
			departure: "",
			want:      "N/A TO N/A",
		},
		{
			name:      "malformed arrival",
			arrival:   "not-a-datetime",
			departure: "2026-02-16T11:00",
			want:      "N/A TO 11:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.TimeSlot(tt.arrival, tt.departure))
		})
	}
}

func TestReservationDate(t *testing.T) {
	t.Run("date taken from arrival", func(t *testing.T) {
		assert.Equal(t, "2026-02-16", service.ReservationDate("2026-02-16T09:00"))
	})

	t.Run("missing arrival defaults to today", func(t *testing.T) {
		today := timezone.Format(timezone.Now(), constant.DateOnlyFormat)

		assert.Equal(t, today, service.ReservationDate(""))
	})

	t.Run("malformed arrival defaults to today", func(t *testing.T) {
		today := timezone.Format(timezone.Now(), constant.DateOnlyFormat)

		assert.Equal(t, today, service.ReservationDate("garbage"))
	})
}
