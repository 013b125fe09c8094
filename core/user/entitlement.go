package user

import "github.com/livante/growthlab/core/catalog"

// Decision is the outcome of an entitlement check on premium content.
type Decision int

const (
	// DecisionAllow grants access.
	DecisionAllow Decision = iota
	// DecisionRequireSignIn denies access until the visitor signs in.
	DecisionRequireSignIn
	// DecisionRequireUpgrade denies access until the user goes premium.
	DecisionRequireUpgrade
)

func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionRequireSignIn:
		return "require_sign_in"
	case DecisionRequireUpgrade:
		return "require_upgrade"
	default:
		return "unknown"
	}
}

// CanOpenCourse decides whether usr may open premium course content.
// usr is nil for anonymous visitors. The check is ordered: sign-in
// before upgrade, so an anonymous visitor is never asked to pay first.
func CanOpenCourse(usr *User) Decision {
	switch {
	case usr == nil:
		return DecisionRequireSignIn
	case !usr.IsPremium():
		return DecisionRequireUpgrade
	default:
		return DecisionAllow
	}
}

// CanPlayModule decides whether usr may play a course module.
// The first module of every course is a free preview.
func CanPlayModule(usr *User, moduleIndex int) Decision {
	if moduleIndex == 0 {
		return DecisionAllow
	}
	return CanOpenCourse(usr)
}

// CanWatchVideo decides whether usr may watch a sample video.
func CanWatchVideo(usr *User, v catalog.Video) Decision {
	if v.IsFree {
		return DecisionAllow
	}
	return CanOpenCourse(usr)
}
