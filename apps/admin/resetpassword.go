package main

import (
	"github.com/trezcool/hostela/core"
)

func (cli *commandLine) resetPassword(uname, pwd string) error {
	uname = core.CleanString(uname, true /* lower */)

	usr, err := cli.usrRepo.GetUserByUsername(uname)
	if err != nil {
		if !core.IsNotFound(err) {
			return err
		}
		if usr, err = cli.usrRepo.GetUserByEmail(uname); err != nil {
			return err
		}
	}
	if err = usr.SetPassword(pwd); err != nil {
		return err
	}
	_, err = cli.usrRepo.UpdateUser(usr, nil)
	return err
}
