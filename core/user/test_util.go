package user

import (
	"github.com/livante/growthlab/core"
)

// NewServiceMock returns a Service whose emails are sent synchronously
// so tests can assert on them without sleeping.
func NewServiceMock(repo Repository, mailSvc core.EmailService, log core.Logger) *Service {
	svc := NewService(repo, mailSvc, log)
	svc.syncMail = true
	return svc
}