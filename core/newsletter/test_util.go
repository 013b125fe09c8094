package newsletter

import "github.com/livante/growthlab/core"

// NewServiceMock returns a Service that sends emails synchronously so
// tests can assert on them.
func NewServiceMock(repo Repository, mailSvc core.EmailService) *Service {
	svc := NewService(repo, mailSvc)
	svc.syncMail = true
	return svc
}
