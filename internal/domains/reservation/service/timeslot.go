package service

import (
	"fmt"

	"portal/shared/constant"
	"portal/shared/timezone"
)

const timeSlotFallback = "N/A"

// TimeSlot composes the ledger display string from the raw datetime-local
// inputs. A missing or malformed side records "N/A" rather than failing the
// booking.
func TimeSlot(arrival, departure string) string {
	return fmt.Sprintf("%s TO %s", clockPart(arrival), clockPart(departure))
}

func clockPart(value string) string {
	if value == constant.Empty {
		return timeSlotFallback
	}

	t, err := timezone.Parse(constant.DateTimeLocalFormat, value)
	if err != nil {
		return timeSlotFallback
	}

	return t.Format(constant.TimeOnlyFormat)
}

// ReservationDate takes the date component of the arrival input, defaulting
// to today when arrival is absent or malformed.
func ReservationDate(arrival string) string {
	if arrival != constant.Empty {
		if t, err := timezone.Parse(constant.DateTimeLocalFormat, arrival); err == nil {
			return t.Format(constant.DateOnlyFormat)
		}
	}

	return timezone.Format(timezone.Now(), constant.DateOnlyFormat)
}
