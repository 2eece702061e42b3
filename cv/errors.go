package cv

import "errors"

var (
	// ErrEmptyResponse is returned when the model produced no usable text
	ErrEmptyResponse = errors.New("empty response from text generation")

	// ErrNoSections is returned when the generated text holds no sections
	ErrNoSections = errors.New("generated CV has no sections")

	// ErrGeneration wraps every failure of the text generation call
	ErrGeneration = errors.New("text generation failed")

	// ErrMissingUserID is returned when a CV is requested without a user id
	ErrMissingUserID = errors.New("user id is required")

	// ErrInvalidUserID is returned for user ids that cannot name a stored CV
	ErrInvalidUserID = errors.New("invalid user id")
)
