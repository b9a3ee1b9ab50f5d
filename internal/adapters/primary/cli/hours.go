package cli

import (
	"context"

	"github.com/alecthomas/kingpin/v2"
	"github.com/google/uuid"

	"aivault-portal/internal/core/domain"
	"aivault-portal/internal/core/services"
)

type hoursCmd struct {
	business      *string
	open          *string
	close         *string
	offDays       *string
	delivery      *string
	reservation   *string
	wifi          *bool
	accessibility *string
	parking       *string
}

func (a *App) addHoursCommands() {
	hours := a.app.Command("hours", "Manage opening hours and amenities")

	cmd := hours.Command("show", "Show opening hours")
	showBiz := businessFlag(cmd)
	cmd.Action(func(*kingpin.ParseContext) error {
		id, err := a.owner(*showBiz)
		if err != nil {
			return err
		}
		return showPage(a, "hours", func(ctx context.Context) (*services.HoursPage, error) {
			return a.pages.Hours(ctx, id)
		})
	})

	set := &hoursCmd{}
	cmd = hours.Command("set", "Create or update opening hours")
	set.business = businessFlag(cmd)
	set.open = cmd.Flag("open", "Opening time, HH:MM").Required().String()
	set.close = cmd.Flag("close", "Closing time, HH:MM").Required().String()
	set.offDays = cmd.Flag("off-days", "Days closed").String()
	set.delivery = cmd.Flag("delivery", "Delivery options").String()
	set.reservation = cmd.Flag("reservation", "Reservation options").String()
	set.wifi = cmd.Flag("wifi", "Wifi available").Bool()
	set.accessibility = cmd.Flag("accessibility", "Accessibility features").String()
	set.parking = cmd.Flag("parking", "Nearby parking").String()
	cmd.Action(func(*kingpin.ParseContext) error {
		id, err := a.owner(*set.business)
		if err != nil {
			return err
		}
		info, err := a.setHours(a.ctx, id, set)
		if err != nil {
			return err
		}
		return a.print(info)
	})

	cmd = hours.Command("clear", "Delete opening hours")
	clearBiz := businessFlag(cmd)
	cmd.Action(func(*kingpin.ParseContext) error {
		id, err := a.owner(*clearBiz)
		if err != nil {
			return err
		}
		if err := a.api.DeleteOperationalInfoByBusiness(a.ctx, id); err != nil {
			return err
		}
		return a.say("cleared hours for business %s", id)
	})
}

// setHours updates the existing record, or creates one when the business has none yet.
func (a *App) setHours(ctx context.Context, businessID uuid.UUID, set *hoursCmd) (*domain.OperationalInfo, error) {
	existing := a.api.GetOperationalInfoByBusiness(ctx, businessID)
	if err := existing.Err(); err != nil {
		return nil, err
	}

	if existing.IsFound() {
		updated, err := a.api.UpdateOperationalInfoByBusiness(ctx, businessID, domain.OperationalInfoUpdate{
			OpeningHours:          set.open,
			ClosingHours:          set.close,
			OffDays:               opt(*set.offDays),
			DeliveryOptions:       opt(*set.delivery),
			ReservationOptions:    opt(*set.reservation),
			WifiAvailable:         set.wifi,
			AccessibilityFeatures: opt(*set.accessibility),
			NearbyParkingSpot:     opt(*set.parking),
		})
		if err != nil || updated != nil {
			return updated, err
		}
		// Deleted in the meantime: fall through to create.
	}

	return a.api.CreateOperationalInfo(ctx, domain.OperationalInfoCreate{
		BusinessID:            businessID,
		OpeningHours:          *set.open,
		ClosingHours:          *set.close,
		OffDays:               opt(*set.offDays),
		DeliveryOptions:       opt(*set.delivery),
		ReservationOptions:    opt(*set.reservation),
		WifiAvailable:         *set.wifi,
		AccessibilityFeatures: opt(*set.accessibility),
		NearbyParkingSpot:     opt(*set.parking),
	})
}
