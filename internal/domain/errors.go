package domain

import "errors"

var (
	ErrDataUnavailable = errors.New("tweet data unavailable")
	ErrAuthentication  = errors.New("live search authentication failed")
	ErrRateLimited     = errors.New("live search rate limit exceeded")
	ErrPermission      = errors.New("live search access denied")
	ErrLexiconMissing  = errors.New("sentiment lexicon missing")
)
