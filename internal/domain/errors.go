package domain

import "errors"

var (
	ErrCookieStoreUnreadable = errors.New("cookie store unreadable")
	ErrCookieNotFound        = errors.New("session cookie not found")
	ErrFetchFailed           = errors.New("fetch failed")
	ErrBadResponse           = errors.New("unexpected response payload")
	ErrInvalidMonth          = errors.New("month out of range")
	ErrDayNotLoaded          = errors.New("day not loaded")
)
