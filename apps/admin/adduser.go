package main

import (
	"github.com/trezcool/hostela/core"
	"github.com/trezcool/hostela/core/user"
)

// addUser updates or creates a user.User
func (cli *commandLine) addUser(uname, email, pwd string, isAdmin bool) error {
	uname = core.CleanString(uname, true /* lower */)
	email = core.CleanString(email, true /* lower */)

	usr, err := cli.usrRepo.GetUserByUsername(uname)
	if err != nil {
		if !core.IsNotFound(err) {
			return err
		}
		if usr, err = cli.usrRepo.GetUserByEmail(email); err != nil && !core.IsNotFound(err) {
			return err
		}
	}

	exists := usr.ID != ""
	usr.Username = uname
	usr.Email = email
	if usr.Name == "" {
		usr.Name = uname
	}
	if isAdmin {
		usr.Role = user.RoleAdmin
	} else if usr.Role == "" {
		usr.Role = user.RoleStaff
	}
	usr.IsActive = true
	if err = usr.SetPassword(pwd); err != nil {
		return err
	}

	if exists {
		active := true
		_, err = cli.usrRepo.UpdateUser(usr, &active)
		return err
	}
	_, err = cli.usrRepo.CreateUser(usr)
	return err
}
