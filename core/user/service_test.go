package user_test

import (
	"log"
	"testing"
	"time"

	"github.com/livante/growthlab/core"
	"github.com/livante/growthlab/core/user"
	emailsvc "github.com/livante/growthlab/services/email"
	logsvc "github.com/livante/growthlab/services/logger"
)

// fakeRepo is a minimal in-memory Repository for service tests.
type fakeRepo struct {
	users map[string]user.User // keyed by ID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]user.User)}
}

func (r *fakeRepo) CheckEmailUniqueness(email string, excl ...user.User) error {
	for _, usr := range r.users {
		if usr.Email != email {
			continue
		}
		excluded := false
		for _, ex := range excl {
			if ex.ID == usr.ID {
				excluded = true
				break
			}
		}
		if !excluded {
			return user.ErrEmailExists
		}
	}
	return nil
}

func (r *fakeRepo) CreateUser(usr user.User) (user.User, error) {
	r.users[usr.ID] = usr
	return usr, nil
}

func (r *fakeRepo) GetUserByID(id string) (user.User, error) {
	if usr, ok := r.users[id]; ok {
		return usr, nil
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeRepo) GetUserByEmail(email string) (user.User, error) {
	for _, usr := range r.users {
		if usr.Email == email {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeRepo) UpdateUser(usr user.User) (user.User, error) {
	if _, ok := r.users[usr.ID]; !ok {
		return user.User{}, user.ErrNotFound
	}
	r.users[usr.ID] = usr
	return usr, nil
}

func newTestService(t *testing.T) (*user.Service, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	logger := logsvc.NewStdLogger(log.Default())
	logger.Enable(false)
	return user.NewServiceMock(repo, emailsvc.NewConsoleServiceMock(), logger), repo
}

func TestService_Create(t *testing.T) {
	svc, _ := newTestService(t)
	sentBefore := len(emailsvc.SentMessages)

	nu := user.NewUser{
		Name:            "Awa Traore",
		Email:           "awa@test.test",
		Password:        "S3cret!pwd",
		PasswordConfirm: "S3cret!pwd",
	}
	if err := nu.Validate(svc); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	usr, err := svc.Create(nu)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	if usr.ID == "" {
		t.Error("Create() did not assign an ID")
	}
	if usr.SubscriptionStatus != user.StatusFree {
		t.Errorf("SubscriptionStatus = %q; want %q", usr.SubscriptionStatus, user.StatusFree)
	}
	if usr.SubscriptionEndDate != nil {
		t.Error("new user has a subscription end date")
	}
	if !usr.IsActive {
		t.Error("new user is not active")
	}
	if err := usr.CheckPassword("S3cret!pwd"); err != nil {
		t.Errorf("CheckPassword() failed: %v", err)
	}

	// welcome email sent
	if got := len(emailsvc.SentMessages); got != sentBefore+1 {
		t.Fatalf("sent %d emails; want 1", got-sentBefore)
	}
	msg := emailsvc.SentMessages[len(emailsvc.SentMessages)-1]
	if msg.TemplateName != "welcome" {
		t.Errorf("email template = %q; want welcome", msg.TemplateName)
	}
	if len(msg.To) != 1 || msg.To[0].Address != nu.Email {
		t.Errorf("email recipients = %v; want [%s]", msg.To, nu.Email)
	}
}

func TestService_Create_duplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)

	nu := user.NewUser{
		Name:            "First",
		Email:           "dup@test.test",
		Password:        "S3cret!pwd",
		PasswordConfirm: "S3cret!pwd",
	}
	if _, err := svc.Create(nu); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	nu2 := nu
	nu2.Name = "Second"
	err := nu2.Validate(svc)
	if err == nil {
		t.Fatal("Validate() accepted a duplicate email")
	}
	if _, ok := err.(*core.ValidationError); !ok {
		t.Fatalf("Validate() error = %T; want *core.ValidationError", err)
	}
}

func TestService_notConfigured(t *testing.T) {
	logger := logsvc.NewStdLogger(log.Default())
	logger.Enable(false)
	svc := user.NewService(nil, emailsvc.NewConsoleServiceMock(), logger)

	if svc.IsConfigured() {
		t.Error("IsConfigured() = true with nil repo")
	}
	if _, err := svc.GetByID("x"); err != core.ErrNotConfigured {
		t.Errorf("GetByID() error = %v; want ErrNotConfigured", err)
	}
	if _, err := svc.GetByEmail("x@y.z"); err != core.ErrNotConfigured {
		t.Errorf("GetByEmail() error = %v; want ErrNotConfigured", err)
	}
	if _, err := svc.Create(user.NewUser{}); err != core.ErrNotConfigured {
		t.Errorf("Create() error = %v; want ErrNotConfigured", err)
	}
	if _, err := svc.UpgradeSubscription("x"); err != core.ErrNotConfigured {
		t.Errorf("UpgradeSubscription() error = %v; want ErrNotConfigured", err)
	}
}

func TestService_UpgradeSubscription(t *testing.T) {
	svc, _ := newTestService(t)
	usr, err := svc.Create(user.NewUser{Name: "U", Email: "u@test.test", Password: "S3cret!pwd", PasswordConfirm: "S3cret!pwd"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	start := time.Now().UTC()
	upgraded, err := svc.UpgradeSubscription(usr.ID)
	if err != nil {
		t.Fatalf("UpgradeSubscription() failed: %v", err)
	}

	if upgraded.SubscriptionStatus != user.StatusPremium {
		t.Errorf("SubscriptionStatus = %q; want %q", upgraded.SubscriptionStatus, user.StatusPremium)
	}
	if upgraded.SubscriptionEndDate == nil {
		t.Fatal("SubscriptionEndDate not set")
	}
	wantEnd := start.Add(core.Conf.SubscriptionPeriod)
	if diff := upgraded.SubscriptionEndDate.Sub(wantEnd); diff < -time.Minute || diff > time.Minute {
		t.Errorf("SubscriptionEndDate = %v; want ~%v", upgraded.SubscriptionEndDate, wantEnd)
	}

	// upgrading again restarts the period
	again, err := svc.UpgradeSubscription(usr.ID)
	if err != nil {
		t.Fatalf("UpgradeSubscription() failed: %v", err)
	}
	if again.SubscriptionEndDate.Before(*upgraded.SubscriptionEndDate) {
		t.Error("second upgrade shortened the subscription")
	}
}

func TestService_CheckSubscriptionStatus(t *testing.T) {
	svc, repo := newTestService(t)
	usr, err := svc.Create(user.NewUser{Name: "U", Email: "u@test.test", Password: "S3cret!pwd", PasswordConfirm: "S3cret!pwd"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	t.Run("free user untouched", func(t *testing.T) {
		got, err := svc.CheckSubscriptionStatus(usr)
		if err != nil {
			t.Fatalf("CheckSubscriptionStatus() failed: %v", err)
		}
		if got.SubscriptionStatus != user.StatusFree {
			t.Errorf("status = %q; want free", got.SubscriptionStatus)
		}
	})

	t.Run("active premium untouched", func(t *testing.T) {
		premium, err := svc.UpgradeSubscription(usr.ID)
		if err != nil {
			t.Fatalf("UpgradeSubscription() failed: %v", err)
		}
		got, err := svc.CheckSubscriptionStatus(premium)
		if err != nil {
			t.Fatalf("CheckSubscriptionStatus() failed: %v", err)
		}
		if got.SubscriptionStatus != user.StatusPremium {
			t.Errorf("status = %q; want premium", got.SubscriptionStatus)
		}
	})

	t.Run("lapsed premium demoted and persisted", func(t *testing.T) {
		stale, _ := repo.GetUserByID(usr.ID)
		past := time.Now().UTC().Add(-24 * time.Hour)
		stale.SubscriptionStatus = user.StatusPremium
		stale.SubscriptionEndDate = &past
		_, _ = repo.UpdateUser(stale)

		got, err := svc.CheckSubscriptionStatus(stale)
		if err != nil {
			t.Fatalf("CheckSubscriptionStatus() failed: %v", err)
		}
		if got.SubscriptionStatus != user.StatusFree {
			t.Errorf("status = %q; want free", got.SubscriptionStatus)
		}
		if got.SubscriptionEndDate != nil {
			t.Error("end date not cleared")
		}
		persisted, _ := repo.GetUserByID(usr.ID)
		if persisted.SubscriptionStatus != user.StatusFree {
			t.Error("demotion not persisted")
		}
	})

	t.Run("premium without end date demoted", func(t *testing.T) {
		stale, _ := repo.GetUserByID(usr.ID)
		stale.SubscriptionStatus = user.StatusPremium
		stale.SubscriptionEndDate = nil
		_, _ = repo.UpdateUser(stale)

		got, err := svc.CheckSubscriptionStatus(stale)
		if err != nil {
			t.Fatalf("CheckSubscriptionStatus() failed: %v", err)
		}
		if got.SubscriptionStatus != user.StatusFree {
			t.Errorf("status = %q; want free", got.SubscriptionStatus)
		}
	})
}

func TestService_PasswordReset(t *testing.T) {
	svc, _ := newTestService(t)
	usr, err := svc.Create(user.NewUser{Name: "U", Email: "reset@test.test", Password: "S3cret!pwd", PasswordConfirm: "S3cret!pwd"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	sentBefore := len(emailsvc.SentMessages)
	if err := svc.RequestPasswordReset(usr.Email); err != nil {
		t.Fatalf("RequestPasswordReset() failed: %v", err)
	}
	if got := len(emailsvc.SentMessages); got != sentBefore+1 {
		t.Fatalf("sent %d emails; want 1", got-sentBefore)
	}

	token, err := user.MakeToken(usr)
	if err != nil {
		t.Fatalf("MakeToken() failed: %v", err)
	}
	updated, err := svc.ResetPassword(user.ResetUserPassword{
		Token:           token,
		UID:             user.EncodeUID(usr),
		Password:        "N3w!secret",
		PasswordConfirm: "N3w!secret",
	})
	if err != nil {
		t.Fatalf("ResetPassword() failed: %v", err)
	}
	if err := updated.CheckPassword("N3w!secret"); err != nil {
		t.Errorf("CheckPassword() after reset failed: %v", err)
	}

	// token is single use: the password hash changed
	if _, err := svc.ResetPassword(user.ResetUserPassword{
		Token:           token,
		UID:             user.EncodeUID(usr),
		Password:        "An0ther!pwd",
		PasswordConfirm: "An0ther!pwd",
	}); err != user.ErrInvalidTokenForTest {
		t.Errorf("reused token error = %v; want errInvalidToken", err)
	}

	if err := svc.RequestPasswordReset("nobody@test.test"); err != user.ErrNotFound {
		t.Errorf("RequestPasswordReset(unknown) error = %v; want ErrNotFound", err)
	}
}
