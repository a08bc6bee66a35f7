package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/agrilconnect-api/internal/domain"
)

const (
	// DefaultDeliveryTime hora usada si el cliente no elige una.
	DefaultDeliveryTime = "09:00"
	earliestDelivery    = 9 * time.Hour
	latestDelivery      = 18 * time.Hour
)

// ParseDelivery combina fecha (YYYY-MM-DD) y hora (HH:MM) en la zona de la tienda.
// La fecha debe ser a partir de mañana y la hora estar entre 09:00 y 18:00.
func ParseDelivery(date, clock string, loc *time.Location, now time.Time) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	clock = strings.TrimSpace(clock)
	if clock == "" {
		clock = DefaultDeliveryTime
	}
	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha de entrega %q: %w", date, domain.ErrInvalidInput)
	}
	hm, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("hora de entrega %q: %w", clock, domain.ErrInvalidInput)
	}
	offset := time.Duration(hm.Hour())*time.Hour + time.Duration(hm.Minute())*time.Minute
	if offset < earliestDelivery || offset > latestDelivery {
		return time.Time{}, fmt.Errorf("hora de entrega fuera de 09:00-18:00: %w", domain.ErrInvalidInput)
	}

	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	if !day.After(today) {
		return time.Time{}, fmt.Errorf("la entrega debe programarse a partir de mañana: %w", domain.ErrInvalidInput)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hm.Hour(), hm.Minute(), 0, 0, loc), nil
}

// DayBounds [inicio, fin) del día calendario de t en loc.
func DayBounds(day time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	d := day.In(loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
