package newsletter

import (
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/livante/growthlab/core"
)

var (
	// errors
	ErrNotFound          = errors.New("subscriber not found")
	ErrAlreadySubscribed = errors.New("this email is already subscribed")

	nowFunc = time.Now // mockable
)

type (
	Repository interface {
		GetSubscriberByEmail(email string) (Subscriber, error)
		CreateSubscriber(sub Subscriber) (Subscriber, error)
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService

		syncMail bool // tests send emails synchronously
	}
)

func NewService(repo Repository, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, mailSvc: mailSvc}
}

// Subscribe records a newsletter sign-up and sends a welcome email.
// Subscribing an email twice is a validation error so callers can
// surface it on the form field.
func (svc *Service) Subscribe(sub Subscription) (Subscriber, error) {
	if svc.repo == nil {
		return Subscriber{}, core.ErrNotConfigured
	}
	if _, err := svc.repo.GetSubscriberByEmail(sub.Email); err == nil {
		return Subscriber{}, core.NewValidationError(
			ErrAlreadySubscribed, core.FieldError{Field: "email", Error: ErrAlreadySubscribed.Error()})
	} else if err != ErrNotFound {
		return Subscriber{}, err
	}
	sb, err := svc.repo.CreateSubscriber(Subscriber{
		ID:        uuid.New().String(),
		Email:     sub.Email,
		CreatedAt: nowFunc().UTC(),
	})
	if err != nil {
		return Subscriber{}, err
	}
	send := func() {
		svc.mailSvc.SendMessages(&core.EmailMessage{
			To:           []mail.Address{{Address: sb.Email}},
			Subject:      "You're on the list",
			TemplateName: "newsletter_welcome",
		})
	}
	if svc.syncMail {
		send()
	} else {
		go send()
	}
	return sb, nil
}
