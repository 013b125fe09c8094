package user

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/livante/growthlab/core"
)

var (
	// errors
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("a user with this email already exists")

	nowFunc = time.Now // mockable
)

type (
	Repository interface {
		CheckEmailUniqueness(email string, excludedUsers ...User) error
		CreateUser(user User) (User, error)
		GetUserByID(id string) (User, error)
		GetUserByEmail(email string) (User, error)
		UpdateUser(user User) (User, error)
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
		log     core.Logger

		syncMail bool // tests send emails synchronously
	}
)

// NewService returns a user Service. repo may be nil when no storage
// backend is configured; repo-backed operations then fail with
// core.ErrNotConfigured and the rest of the app keeps working.
func NewService(repo Repository, mailSvc core.EmailService, log core.Logger) *Service {
	return &Service{repo: repo, mailSvc: mailSvc, log: log}
}

func (svc *Service) IsConfigured() bool { return svc.repo != nil }

func (svc *Service) checkConfigured() error {
	if svc.repo == nil {
		return core.ErrNotConfigured
	}
	return nil
}

func (svc *Service) checkUniqueness(email string, exclUsers ...User) error {
	if err := svc.checkConfigured(); err != nil {
		return err
	}
	if err := svc.repo.CheckEmailUniqueness(email, exclUsers...); err != nil {
		if err == ErrEmailExists {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Create(nu NewUser) (User, error) {
	if err := svc.checkConfigured(); err != nil {
		return User{}, err
	}
	now := nowFunc().UTC()
	usr := User{
		ID:                 uuid.New().String(),
		Name:               nu.Name,
		Email:              nu.Email,
		SubscriptionStatus: StatusFree,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, errors.Wrap(err, "hashing password")
	}
	usr, err := svc.repo.CreateUser(usr)
	if err != nil {
		return User{}, err
	}
	svc.dispatch(func() { svc.sendWelcomeMail(usr) })
	return usr, nil
}

func (svc *Service) dispatch(f func()) {
	if svc.syncMail {
		f()
		return
	}
	go f()
}

func (svc *Service) GetByID(id string) (User, error) {
	if err := svc.checkConfigured(); err != nil {
		return User{}, err
	}
	return svc.repo.GetUserByID(id)
}

func (svc *Service) GetByEmail(email string) (User, error) {
	if err := svc.checkConfigured(); err != nil {
		return User{}, err
	}
	return svc.repo.GetUserByEmail(core.CleanString(email, true /* lower */))
}

func (svc *Service) Update(id string, uu UpdateUser) (User, error) {
	if err := svc.checkConfigured(); err != nil {
		return User{}, err
	}
	usr, err := svc.repo.GetUserByID(id)
	if err != nil {
		return User{}, err
	}
	usr.Name = uu.Name
	usr.Email = uu.Email
	usr.UpdatedAt = nowFunc().UTC()
	if uu.Password != "" {
		if err := usr.SetPassword(uu.Password); err != nil {
			return User{}, errors.Wrap(err, "hashing password")
		}
	}
	return svc.repo.UpdateUser(usr)
}

func (svc *Service) SetLastLogin(usr User) (User, error) {
	if err := svc.checkConfigured(); err != nil {
		return User{}, err
	}
	usr.LastLogin = nowFunc().UTC()
	return svc.repo.UpdateUser(usr)
}

// UpgradeSubscription promotes a user to premium for one subscription period.
// Upgrading an already premium user restarts the period from now.
func (svc *Service) UpgradeSubscription(id string) (User, error) {
	if err := svc.checkConfigured(); err != nil {
		return User{}, err
	}
	usr, err := svc.repo.GetUserByID(id)
	if err != nil {
		return User{}, err
	}
	now := nowFunc().UTC()
	end := now.Add(core.Conf.SubscriptionPeriod)
	usr.SubscriptionStatus = StatusPremium
	usr.SubscriptionEndDate = &end
	usr.UpdatedAt = now
	return svc.repo.UpdateUser(usr)
}

// CheckSubscriptionStatus returns the user's effective subscription status,
// demoting lapsed premium users back to free. The demotion is persisted so
// a stale premium flag heals itself the first time it is observed.
func (svc *Service) CheckSubscriptionStatus(usr User) (User, error) {
	if !usr.SubscriptionExpired(nowFunc().UTC()) {
		return usr, nil
	}
	if err := svc.checkConfigured(); err != nil {
		return User{}, err
	}
	usr.SubscriptionStatus = StatusFree
	usr.SubscriptionEndDate = nil
	usr.UpdatedAt = nowFunc().UTC()
	return svc.repo.UpdateUser(usr)
}

func (svc *Service) RequestPasswordReset(email string) error {
	usr, err := svc.GetByEmail(email)
	if err != nil {
		return err
	}
	svc.dispatch(func() { svc.sendPasswordResetMail(usr) })
	return nil
}

func (svc *Service) ResetPassword(rp ResetUserPassword) (User, error) {
	if err := svc.checkConfigured(); err != nil {
		return User{}, err
	}
	uid, err := decodeUID(rp.UID)
	if err != nil {
		return User{}, errInvalidToken
	}
	usr, err := svc.repo.GetUserByID(uid)
	if err != nil {
		return User{}, err
	}
	if err := verifyToken(usr, rp.Token); err != nil {
		return User{}, err
	}
	if err := usr.SetPassword(rp.Password); err != nil {
		return User{}, errors.Wrap(err, "hashing password")
	}
	usr.UpdatedAt = nowFunc().UTC()
	return svc.repo.UpdateUser(usr)
}

func (svc *Service) sendWelcomeMail(usr User) {
	msg := &core.EmailMessage{
		To:           []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject:      fmt.Sprintf("Welcome to %s", core.Conf.AppName),
		TemplateName: "welcome",
		TemplateData: struct{ Name string }{usr.Name},
	}
	svc.mailSvc.SendMessages(msg)
}

func (svc *Service) sendPasswordResetMail(usr User) {
	token, err := MakeToken(usr)
	if err != nil {
		svc.log.Error("generating password reset token", err)
		return
	}
	msg := &core.EmailMessage{
		To:           []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject:      "Password Reset",
		TemplateName: "password_reset",
		TemplateData: struct {
			Name string
			UID  string
			Token string
		}{usr.Name, EncodeUID(usr), token},
	}
	svc.mailSvc.SendMessages(msg)
}
