package service

import "errors"

var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrMediaUnavailable   = errors.New("media storage is not configured")
	ErrInvalidToken       = errors.New("invalid token")
)
