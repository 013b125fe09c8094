package user

// ErrInvalidTokenForTest exposes errInvalidToken to external test packages.
var ErrInvalidTokenForTest = errInvalidToken
