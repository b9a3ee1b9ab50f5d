package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// OperationalInfo is a business's hours and amenities. A business has at most one, and a
// freshly registered business has none.
type OperationalInfo struct {
	ID                    uuid.UUID  `json:"info_id"`
	BusinessID            uuid.UUID  `json:"business_id"`
	OpeningHours          string     `json:"opening_hours"`
	ClosingHours          string     `json:"closing_hours"`
	OffDays               *string    `json:"off_days"`
	DeliveryOptions       *string    `json:"delivery_options"`
	ReservationOptions    *string    `json:"reservation_options"`
	WifiAvailable         bool       `json:"wifi_available"`
	AccessibilityFeatures *string    `json:"accessibility_features"`
	NearbyParkingSpot     *string    `json:"nearby_parking_spot"`
	CreatedAt             Timestamp  `json:"created_at"`
	UpdatedAt             *Timestamp `json:"updated_at"`
}

// OperationalInfoCreate keeps the backend's create-side spelling of the parking field.
type OperationalInfoCreate struct {
	BusinessID            uuid.UUID `json:"business_id"`
	OpeningHours          string    `json:"opening_hours"`
	ClosingHours          string    `json:"closing_hours"`
	OffDays               *string   `json:"off_days,omitempty"`
	DeliveryOptions       *string   `json:"delivery_options,omitempty"`
	ReservationOptions    *string   `json:"reservation_options,omitempty"`
	WifiAvailable         bool      `json:"wifi_available"`
	AccessibilityFeatures *string   `json:"accessibility_features,omitempty"`
	NearbyParkingSpot     *string   `json:"neaby_parking_spot,omitempty"`
}

type OperationalInfoUpdate struct {
	OpeningHours          *string `json:"opening_hours,omitempty"`
	ClosingHours          *string `json:"closing_hours,omitempty"`
	OffDays               *string `json:"off_days,omitempty"`
	DeliveryOptions       *string `json:"delivery_options,omitempty"`
	ReservationOptions    *string `json:"reservation_options,omitempty"`
	WifiAvailable         *bool   `json:"wifi_available,omitempty"`
	AccessibilityFeatures *string `json:"accessibility_features,omitempty"`
	NearbyParkingSpot     *string `json:"nearby_parking_spot,omitempty"`
}

// FormatClock renders a 24h "HH:MM" value as "H:MM AM/PM". Unparseable input is returned
// unchanged.
func FormatClock(s string) string {
	hour, minute, ok := strings.Cut(s, ":")
	if !ok {
		return s
	}
	h, err := strconv.Atoi(hour)
	if err != nil || h < 0 || h > 23 {
		return s
	}
	if len(minute) > 2 {
		minute = minute[:2]
	}
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%s %s", h, minute, suffix)
}

// Hours is the opening window as shown on public pages, e.g. "9:00 AM - 5:30 PM".
func (o OperationalInfo) Hours() string {
	return FormatClock(o.OpeningHours) + " - " + FormatClock(o.ClosingHours)
}
