package models

import (
	"errors"
	"fmt"
)

/* ValidationError */

var ErrValidation = errors.New("invalid request")

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Message)
}

func (*ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

/* UnauthorizedError */

var ErrUnauthorized = errors.New("unauthorized")

type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized: %s", e.Message)
}

func (*UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

func NewUnauthorizedError(message string) error {
	return &UnauthorizedError{Message: message}
}

/* RateLimitError */

var ErrRateLimited = errors.New("rate limit exceeded")

type RateLimitError struct {
	Count int64
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func (*RateLimitError) Unwrap() error {
	return ErrRateLimited
}

func NewRateLimitError(count int64) error {
	return &RateLimitError{Count: count}
}
