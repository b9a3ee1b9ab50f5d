package cli

import (
	"github.com/alecthomas/kingpin/v2"

	"aivault-portal/internal/core/domain"
	"aivault-portal/internal/core/services"
)

type registerCmd struct {
	email        *string
	password     *string
	name         *string
	businessName *string
	businessType *string
	address      *string
}

type loginCmd struct {
	email    *string
	password *string
}

func (a *App) addAccountCommands() {
	reg := &registerCmd{}
	cmd := a.app.Command("register", "Create an owner account and its business")
	reg.email = cmd.Flag("email", "Owner email").Required().String()
	reg.password = cmd.Flag("password", "Owner password").Required().String()
	reg.name = cmd.Flag("name", "Owner name").String()
	reg.businessName = cmd.Flag("business-name", "Business name").Required().String()
	reg.businessType = cmd.Flag("business-type", "Business type").Default(string(domain.BusinessTypeRestaurant)).
		Enum(string(domain.BusinessTypeRestaurant), string(domain.BusinessTypeSalon), string(domain.BusinessTypeClinic))
	reg.address = cmd.Flag("address", "Business address").Required().String()
	cmd.Action(func(*kingpin.ParseContext) error {
		sess, err := a.accounts.Register(a.ctx, services.RegisterInput{
			Email:        *reg.email,
			Password:     *reg.password,
			Name:         *reg.name,
			BusinessName: *reg.businessName,
			BusinessType: domain.BusinessType(*reg.businessType),
			Address:      *reg.address,
		})
		if err != nil {
			return err
		}
		return a.print(sess)
	})

	login := &loginCmd{}
	cmd = a.app.Command("login", "Sign in and remember the session")
	login.email = cmd.Flag("email", "Owner email").Required().String()
	login.password = cmd.Flag("password", "Owner password").Required().String()
	cmd.Action(func(*kingpin.ParseContext) error {
		sess, err := a.accounts.Login(a.ctx, *login.email, *login.password)
		if err != nil {
			return err
		}
		return a.print(sess)
	})

	a.app.Command("logout", "Forget the saved session").Action(func(*kingpin.ParseContext) error {
		if err := a.accounts.Logout(); err != nil {
			return err
		}
		return a.say("logged out")
	})

	a.app.Command("whoami", "Show the saved session").Action(func(*kingpin.ParseContext) error {
		sess, err := a.accounts.Current()
		if err != nil {
			return err
		}
		if _, err := sess.RequireUser(); err != nil {
			return err
		}
		return a.print(sess)
	})
}
