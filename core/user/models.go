package user

import (
	"time"

	"github.com/volatiletech/null/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/hostela/core"
)

// Roles
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

var (
	AllRoles = []string{RoleAdmin, RoleManager, RoleStaff}

	rolePriorities = map[string]int{
		RoleAdmin:   30,
		RoleManager: 20,
		RoleStaff:   10,
	}
)

func RolePriority(role string) int {
	return rolePriorities[role]
}

// SearchFields lists the user fields matched by a search term.
var SearchFields = []string{"name", "username", "email"}

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"isActive"`
	PasswordHash []byte    `json:"-"`
	LastLogin    null.Time `json:"lastLogin,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NewUser contains information needed to create a new User.
type NewUser struct {
	Username        string `json:"username" validate:"required,min=3,alphanum_"`
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	Role            string `json:"role" validate:"required,oneof=admin manager staff"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
}

func (nu *NewUser) Validate(svc *Service) error {
	nu.Username = core.CleanString(nu.Username, true)
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true)
	nu.Phone = core.CleanString(nu.Phone)
	nu.Role = core.CleanString(nu.Role, true)

	if err := core.Validate.Struct(nu); err != nil {
		return err
	}
	return svc.checkUniqueness(nu.Username, nu.Email)
}

// UpdateUser defines what information may be provided to modify an existing User.
type UpdateUser struct {
	Username        string `json:"username" validate:"omitempty,min=3,alphanum_"`
	Name            string `json:"name"`
	Email           string `json:"email" validate:"omitempty,email"`
	Phone           string `json:"phone"`
	Role            string `json:"role" validate:"omitempty,oneof=admin manager staff"`
	IsActive        *bool  `json:"isActive"`
	Password        string `json:"password" validate:"omitempty,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required_with=Password,eqfield=Password"`
}

func (uu *UpdateUser) Validate(origUsr User, svc *Service) error {
	uu.Name = core.CleanString(uu.Name)
	uu.Phone = core.CleanString(uu.Phone)
	uu.Role = core.CleanString(uu.Role, true)

	uname := core.CleanString(uu.Username, true)
	if uname == "" {
		uname = origUsr.Username
	}
	uu.Username = uname

	email := core.CleanString(uu.Email, true)
	if email == "" {
		email = origUsr.Email
	}
	uu.Email = email

	if err := core.Validate.Struct(uu); err != nil {
		return err
	}
	return svc.checkUniqueness(uu.Username, uu.Email, origUsr)
}

type QueryFilter struct {
	Search   string `query:"search"`
	Role     string `query:"role"`
	IsActive *bool  `query:"is_active"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Role = core.CleanString(qf.Role, true)
}
