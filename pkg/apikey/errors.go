package apikey

import "errors"

var (
	ErrInvalidFormat = errors.New("apikey: invalid key format")
	ErrInvalidPrefix = errors.New("apikey: invalid key prefix")
)
