package newsletter

import (
	"time"

	"github.com/livante/growthlab/core"
)

type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

// Subscription is the sign-up payload.
type Subscription struct {
	Email string `json:"email" validate:"required,email"`
}

func (s *Subscription) Validate() error {
	s.Email = core.CleanString(s.Email, true /* lower */)
	return core.Validate.Struct(s)
}
