package appointment

import (
	"fmt"
	"time"

	"mindcare/models"
	"mindcare/utils"

	"go.uber.org/zap"
)

// DailySlots is the fixed set of bookable session times.
var DailySlots = []string{
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
}

// SlotAvailability returns each daily slot for the counselor on the given
// date with its live booked state. Dates in the past and Sundays are not
// bookable.
func (s *DefaultAppointmentService) SlotAvailability(counselorID string, date time.Time) ([]models.SlotAvailability, error) {
	day := normalizeDate(date)

	today := normalizeDate(time.Now())
	if day.Before(today) {
		return nil, ValidationError{Message: "Appointment date must not be in the past"}
	}
	if day.Weekday() == time.Sunday {
		return nil, ValidationError{Message: "Appointments cannot be booked on Sundays"}
	}

	counselor, err := s.CounselorRepo.GetByID(counselorID)
	if err != nil {
		utils.GetLogger().Error("SlotAvailability: counselor lookup failed", zap.String("counselorId", counselorID), zap.Error(err))
		return nil, fmt.Errorf("failed to check availability: %w", err)
	}
	if counselor == nil {
		return nil, NotFoundError{Resource: "Counselor"}
	}

	taken, err := s.Repo.TakenSlots(counselorID, day)
	if err != nil {
		utils.GetLogger().Error("SlotAvailability: taken slots lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to check availability: %w", err)
	}
	takenSet := make(map[string]bool, len(taken))
	for _, slot := range taken {
		takenSet[slot] = true
	}

	slots := make([]models.SlotAvailability, 0, len(DailySlots))
	for _, slot := range DailySlots {
		slots = append(slots, models.SlotAvailability{
			Time:      slot,
			Available: !takenSet[slot],
		})
	}
	return slots, nil
}
