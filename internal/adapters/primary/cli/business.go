package cli

import (
	"context"
	"strconv"

	"github.com/alecthomas/kingpin/v2"

	"aivault-portal/internal/core/domain"
	"aivault-portal/internal/core/services"
)

func (a *App) addBusinessCommands() {
	// Directory
	limit, offset := 0, 0
	cmd := a.app.Command("directory", "List businesses with their hours, media, services and coupons")
	cmd.Flag("limit", "Page size").Default("10").IntVar(&limit)
	cmd.Flag("offset", "Page offset").Default("0").IntVar(&offset)
	cmd.Action(func(*kingpin.ParseContext) error {
		page, err := a.pages.Directory(a.ctx, limit, offset)
		if printErr := a.print(page); printErr != nil {
			return printErr
		}
		return err
	})

	// Business
	business := a.app.Command("business", "Show or edit a business")

	var showID string
	cmd = business.Command("show", "Show the public listing of a business")
	cmd.Arg("id", "Business id (defaults to the session's)").StringVar(&showID)
	cmd.Action(func(*kingpin.ParseContext) error {
		id, err := a.business(showID)
		if err != nil {
			return err
		}
		return showPage(a, "business", func(ctx context.Context) (*services.DetailPage, error) {
			return a.pages.BusinessDetail(ctx, id)
		})
	})

	var updateID, name, description, phone, website string
	var address, timezone, slogan, btype, published string
	cmd = business.Command("update", "Update the signed-in owner's business")
	cmd.Flag("business", "Business id (defaults to the session's)").StringVar(&updateID)
	cmd.Flag("name", "Name").StringVar(&name)
	cmd.Flag("description", "Description").StringVar(&description)
	cmd.Flag("phone", "Phone").StringVar(&phone)
	cmd.Flag("website", "Website").StringVar(&website)
	cmd.Flag("address", "Address").StringVar(&address)
	cmd.Flag("timezone", "Timezone").StringVar(&timezone)
	cmd.Flag("slogan", "Quote or slogan").StringVar(&slogan)
	cmd.Flag("type", "Business type").EnumVar(&btype, string(domain.BusinessTypeRestaurant), string(domain.BusinessTypeSalon), string(domain.BusinessTypeClinic))
	cmd.Flag("published", "Publish the listing").EnumVar(&published, "true", "false")
	cmd.Action(func(*kingpin.ParseContext) error {
		id, err := a.owner(updateID)
		if err != nil {
			return err
		}
		in := domain.BusinessUpdate{
			Name:        opt(name),
			Description: opt(description),
			Phone:       opt(phone),
			Website:     opt(website),
			Address:     opt(address),
			Timezone:    opt(timezone),
			QuoteSlogan: opt(slogan),
		}
		if btype != "" {
			t := domain.BusinessType(btype)
			in.BusinessType = &t
		}
		if published != "" {
			p, _ := strconv.ParseBool(published)
			in.Published = &p
		}
		updated, err := a.api.UpdateBusiness(a.ctx, id, in)
		if err != nil {
			return err
		}
		return a.print(updated)
	})

	// Dashboard
	var dashID string
	cmd = a.app.Command("dashboard", "Show the owner dashboard summary")
	cmd.Flag("business", "Business id (defaults to the session's)").StringVar(&dashID)
	cmd.Action(func(*kingpin.ParseContext) error {
		id, err := a.owner(dashID)
		if err != nil {
			return err
		}
		return showPage(a, "dashboard", func(ctx context.Context) (*services.DashboardPage, error) {
			return a.pages.Dashboard(ctx, id)
		})
	})
}
