package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"aivault-portal/internal/core/domain"
	ports "aivault-portal/internal/core/ports/output"
	"aivault-portal/internal/core/services"
)

const defaultCouponDays = 30

// businessFlag adds the --business override every owner command accepts.
func businessFlag(cmd *kingpin.CmdClause) *string {
	return cmd.Flag("business", "Business id (defaults to the session's)").String()
}

func (a *App) addServiceCommands() {
	svc := a.app.Command("services", "Manage the services a business offers")

	cmd := svc.Command("list", "List services")
	listBiz := businessFlag(cmd)
	cmd.Action(func(*kingpin.ParseContext) error {
		id, err := a.owner(*listBiz)
		if err != nil {
			return err
		}
		return showPage(a, "services", func(ctx context.Context) (*services.ServicesPage, error) {
			return a.pages.Services(ctx, id)
		})
	})

	cmd = svc.Command("add", "Add a service")
	addBiz := businessFlag(cmd)
	name := cmd.Flag("name", "Service name").Required().String()
	price := cmd.Flag("price", "Price").Required().Float64()
	kind := cmd.Flag("type", "Service type").Default(string(domain.BusinessTypeRestaurant)).
		Enum(string(domain.BusinessTypeRestaurant), string(domain.BusinessTypeSalon), string(domain.BusinessTypeClinic))
	duration := cmd.Flag("duration", "Duration in minutes").Int()
	description := cmd.Flag("description", "Description").String()
	cmd.Action(func(*kingpin.ParseContext) error {
		id, err := a.owner(*addBiz)
		if err != nil {
			return err
		}
		in := domain.ServiceCreate{
			BusinessID:  id,
			ServiceType: domain.BusinessType(*kind),
			Name:        *name,
			Description: opt(*description),
			Price:       *price,
		}
		if *duration > 0 {
			in.DurationMinutes = duration
		}
		created, err := a.api.CreateService(a.ctx, in)
		if err != nil {
			return err
		}
		return a.print(created)
	})

	cmd = svc.Command("rm", "Delete a service")
	rmID := cmd.Arg("id", "Service id").Required().String()
	cmd.Action(func(*kingpin.ParseContext) error {
		if err := a.requireUser(); err != nil {
			return err
		}
		id, err := parseID(*rmID)
		if err != nil {
			return err
		}
		if err := a.api.DeleteService(a.ctx, id); err != nil {
			return err
		}
		return a.say("deleted service %s", id)
	})
}

func (a *App) addMediaCommands() {
	media := a.app.Command("media", "Manage photos, videos and documents")

	cmd := media.Command("list", "List media assets")
	listBiz := businessFlag(cmd)
	cmd.Action(func(*kingpin.ParseContext) error {
		id, err := a.owner(*listBiz)
		if err != nil {
			return err
		}
		return showPage(a, "media", func(ctx context.Context) (*services.MediaPage, error) {
			return a.pages.Media(ctx, id)
		})
	})

	cmd = media.Command("upload", "Upload a file")
	upBiz := businessFlag(cmd)
	file := cmd.Arg("file", "File to upload").Required().String()
	kind := cmd.Flag("type", "Media type").Default(string(domain.MediaTypeImage)).
		Enum(string(domain.MediaTypeImage), string(domain.MediaTypeVideo), string(domain.MediaTypeDocument))
	cmd.Action(func(*kingpin.ParseContext) error {
		id, err := a.owner(*upBiz)
		if err != nil {
			return err
		}
		f, err := a.fs.Open(*file)
		if err != nil {
			return fmt.Errorf("open %s: %w", *file, err)
		}
		defer f.Close()

		asset, err := a.api.UploadMedia(a.ctx, ports.Upload{
			BusinessID: id,
			MediaType:  domain.MediaType(*kind),
			Filename:   filepath.Base(*file),
			Content:    f,
		})
		if err != nil {
			return err
		}
		return a.print(services.MediaView{MediaAsset: *asset, AbsoluteURL: a.api.MediaURL(asset.URL)})
	})

	cmd = media.Command("rm", "Delete a media asset")
	rmID := cmd.Arg("id", "Asset id").Required().String()
	cmd.Action(func(*kingpin.ParseContext) error {
		if err := a.requireUser(); err != nil {
			return err
		}
		id, err := parseID(*rmID)
		if err != nil {
			return err
		}
		if err := a.api.DeleteMedia(a.ctx, id); err != nil {
			return err
		}
		return a.say("deleted media %s", id)
	})
}

func (a *App) addCouponCommands() {
	coupons := a.app.Command("coupons", "Manage coupons")

	cmd := coupons.Command("list", "List coupons")
	listBiz := businessFlag(cmd)
	cmd.Action(func(*kingpin.ParseContext) error {
		id, err := a.owner(*listBiz)
		if err != nil {
			return err
		}
		return showPage(a, "coupons", func(ctx context.Context) (*services.CouponsPage, error) {
			return a.pages.Coupons(ctx, id)
		})
	})

	cmd = coupons.Command("add", "Add a coupon")
	addBiz := businessFlag(cmd)
	code := cmd.Flag("code", "Coupon code").Required().String()
	discount := cmd.Flag("discount", "Discount, e.g. 10% or 5.00").Required().String()
	description := cmd.Flag("description", "Description").String()
	from := cmd.Flag("from", "Valid from (YYYY-MM-DD, default today)").String()
	until := cmd.Flag("until", "Valid until (YYYY-MM-DD, default 30 days after start)").String()
	terms := cmd.Flag("terms", "Terms and conditions").String()
	inactive := cmd.Flag("inactive", "Create the coupon switched off").Bool()
	cmd.Action(func(*kingpin.ParseContext) error {
		id, err := a.owner(*addBiz)
		if err != nil {
			return err
		}
		start, end, err := couponWindow(*from, *until, time.Now())
		if err != nil {
			return err
		}
		created, err := a.api.CreateCoupon(a.ctx, domain.CouponCreate{
			BusinessID:      id,
			Code:            *code,
			Description:     opt(*description),
			DiscountValue:   *discount,
			ValidFrom:       start,
			ValidUntil:      end,
			TermsConditions: opt(*terms),
			IsActive:        !*inactive,
		})
		if err != nil {
			return err
		}
		return a.print(created)
	})

	cmd = coupons.Command("toggle", "Switch a coupon on or off")
	toggleID := cmd.Arg("id", "Coupon id").Required().String()
	cmd.Action(func(*kingpin.ParseContext) error {
		if err := a.requireUser(); err != nil {
			return err
		}
		id, err := parseID(*toggleID)
		if err != nil {
			return err
		}
		current, err := a.api.GetCoupon(a.ctx, id)
		if err != nil {
			return err
		}
		active := !current.IsActive
		updated, err := a.api.UpdateCoupon(a.ctx, id, domain.CouponUpdate{IsActive: &active})
		if err != nil {
			return err
		}
		return a.print(updated)
	})

	cmd = coupons.Command("rm", "Delete a coupon")
	rmID := cmd.Arg("id", "Coupon id").Required().String()
	cmd.Action(func(*kingpin.ParseContext) error {
		if err := a.requireUser(); err != nil {
			return err
		}
		id, err := parseID(*rmID)
		if err != nil {
			return err
		}
		if err := a.api.DeleteCoupon(a.ctx, id); err != nil {
			return err
		}
		return a.say("deleted coupon %s", id)
	})
}

func couponWindow(from, until string, now time.Time) (domain.Timestamp, domain.Timestamp, error) {
	start := domain.NewTimestamp(now)
	if from != "" {
		t, err := domain.ParseTimestamp(from)
		if err != nil {
			return domain.Timestamp{}, domain.Timestamp{}, err
		}
		start = t
	}

	end := domain.NewTimestamp(start.AddDate(0, 0, defaultCouponDays))
	if until != "" {
		t, err := domain.ParseTimestamp(until)
		if err != nil {
			return domain.Timestamp{}, domain.Timestamp{}, err
		}
		end = t
	}
	if end.Before(start.Time) {
		return domain.Timestamp{}, domain.Timestamp{}, fmt.Errorf("coupon ends (%s) before it starts (%s)", until, start.Format(time.DateOnly))
	}
	return start, end, nil
}
