package dedup

import "errors"

var (
	ErrEmptyConnectionURL = errors.New("dedup: empty redis connection URL")
	ErrFailedToParseURL   = errors.New("dedup: failed to parse redis connection URL")
	ErrConnectionFailed   = errors.New("dedup: failed to connect to redis")
	ErrStoreFailed        = errors.New("dedup: store operation failed")
	ErrInvalidSchedule    = errors.New("dedup: invalid purge schedule")
)
