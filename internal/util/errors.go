package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("this email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")

	ErrQuestionNotFound   = errors.New("question not found")
	ErrSectionNotFound    = errors.New("section not found")
	ErrSessionNotFound    = errors.New("assessment session not found")
	ErrSessionComplete    = errors.New("assessment already complete")
	ErrIncompleteAnswer   = errors.New("this question is required")
	ErrNoResponses        = errors.New("no assessment responses provided")
	ErrRecordNotFound     = errors.New("assessment record not found")
	ErrRecordNotRetryable = errors.New("assessment is not in a retryable state")
)
