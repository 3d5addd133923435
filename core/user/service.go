package user

import (
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/hostela/core"
)

var (
	ErrNotFound       = core.NewNotFoundError("user not found")
	ErrEmailExists    = errors.New("a user with this email already exists")
	ErrUsernameExists = errors.New("a user with this username already exists")
)

type (
	Repository interface {
		CheckUsernameUniqueness(username, email string, excludedUsers ...User) error
		CreateUser(user User) (User, error)
		QueryAllUsers() ([]User, error)
		GetUserByID(id string) (User, error)
		GetUserByUsername(username string) (User, error)
		GetUserByEmail(email string) (User, error)
		UpdateUser(user User, isActive *bool) (User, error)
		SetLastLogin(id string, at time.Time) error
		DeleteUser(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) checkUniqueness(uname, email string, exclUsers ...User) error {
	if err := svc.repo.CheckUsernameUniqueness(uname, email, exclUsers...); err != nil {
		var field string
		switch err {
		case ErrUsernameExists:
			field = "username"
		case ErrEmailExists:
			field = "email"
		default:
			return err
		}
		return core.NewValidationError(err, core.FieldError{Field: field, Error: err.Error()})
	}
	return nil
}

func (svc *Service) Create(nu NewUser) (User, error) {
	usr := User{
		Username: nu.Username,
		Name:     nu.Name,
		Email:    nu.Email,
		Phone:    nu.Phone,
		Role:     nu.Role,
		IsActive: true,
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, err
	}
	return svc.repo.CreateUser(usr)
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

func (svc *Service) GetByID(id string) (User, error) {
	return svc.repo.GetUserByID(id)
}

func (svc *Service) GetByUsername(uname string) (User, error) {
	return svc.repo.GetUserByUsername(core.CleanString(uname, true))
}

func (svc *Service) GetByEmail(email string) (User, error) {
	return svc.repo.GetUserByEmail(core.CleanString(email, true))
}

func (svc *Service) Filter(filter QueryFilter) ([]User, error) {
	users, err := svc.repo.QueryAllUsers()
	if err != nil {
		return nil, err
	}

	if filter.Role != "" {
		users = keep(users, func(u User) bool { return u.Role == filter.Role })
	}
	if filter.IsActive != nil {
		users = keep(users, func(u User) bool { return u.IsActive == *filter.IsActive })
	}
	return core.Search(users, SearchFields, filter.Search), nil
}

func (svc *Service) Update(id string, uu UpdateUser) (User, error) {
	usr := User{
		ID:       id,
		Username: uu.Username,
		Name:     uu.Name,
		Email:    uu.Email,
		Phone:    uu.Phone,
		Role:     uu.Role,
	}
	if uu.Password != "" {
		if err := usr.SetPassword(uu.Password); err != nil {
			return User{}, err
		}
	}
	return svc.repo.UpdateUser(usr, uu.IsActive)
}

func (svc *Service) SetLastLogin(usr User) error {
	return svc.repo.SetLastLogin(usr.ID, time.Now().UTC())
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteUser(id)
}

func keep(users []User, pred func(User) bool) []User {
	out := users[:0:0]
	for _, u := range users {
		if pred(u) {
			out = append(out, u)
		}
	}
	return out
}
