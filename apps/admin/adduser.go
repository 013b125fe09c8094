package main

import (
	"time"

	"github.com/google/uuid"

	"github.com/livante/growthlab/core"
	"github.com/livante/growthlab/core/user"
)

// addUser updates or creates a user account, bypassing the password
// policy. Meant for operators bootstrapping test accounts.
func (cli *commandLine) addUser(name, email, pwd string, premium bool) error {
	name = core.CleanString(name)
	email = core.CleanString(email, true /* lower */)
	now := time.Now().UTC()

	usr, err := cli.usrRepo.GetUserByEmail(email)
	var created bool
	if err != nil {
		if err != user.ErrNotFound {
			return err
		}
		usr = user.User{
			ID:                 uuid.New().String(),
			SubscriptionStatus: user.StatusFree,
			CreatedAt:          now,
		}
		created = true
	}

	usr.Name = name
	usr.Email = email
	usr.IsActive = true
	if premium {
		end := now.Add(core.Conf.SubscriptionPeriod)
		usr.SubscriptionStatus = user.StatusPremium
		usr.SubscriptionEndDate = &end
	}
	if err := usr.SetPassword(pwd); err != nil {
		return err
	}
	usr.UpdatedAt = now

	if created {
		_, err = cli.usrRepo.CreateUser(usr)
	} else {
		_, err = cli.usrRepo.UpdateUser(usr)
	}
	return err
}
