package echoapi

import (
	"time"

	"github.com/livante/growthlab/core"
	"github.com/livante/growthlab/core/user"
)

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		Token string    `json:"token"`
		User  user.User `json:"user"`
	}

	TokenResponse struct {
		Token string `json:"token"`
	}

	PasswordResetRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	SuccessResponse struct {
		Success string `json:"success"`
	}

	SubscriptionStatusResponse struct {
		Status  string     `json:"status"`
		EndDate *time.Time `json:"end_date"`
	}

	AccessResponse struct {
		Decision string `json:"decision"`
	}

	CompleteCourseRequest struct {
		CourseID int `json:"course_id" validate:"required"`
	}

	AnswerRequest struct {
		Answer string `json:"answer" validate:"required"`
	}
)

func (lr *LoginRequest) Validate() error {
	lr.Email = core.CleanString(lr.Email, true /* lower */)
	return core.Validate.Struct(lr)
}

func (pr *PasswordResetRequest) Validate() error {
	pr.Email = core.CleanString(pr.Email, true /* lower */)
	return core.Validate.Struct(pr)
}

func (cr *CompleteCourseRequest) Validate() error {
	return core.Validate.Struct(cr)
}

func (ar *AnswerRequest) Validate() error {
	return core.Validate.Struct(ar)
}
