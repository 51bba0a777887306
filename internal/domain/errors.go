package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrMissingConfigValue is returned when a key required by a variant is absent or empty
	ErrMissingConfigValue = errors.New("missing config value")

	// ErrUnknownVariant is returned when a variant tag is not registered
	ErrUnknownVariant = errors.New("unknown contract variant")

	// ErrInvalidVariant is returned when a variant definition is malformed
	ErrInvalidVariant = errors.New("invalid variant definition")

	// ErrArtifactNotFound is returned when a compiled artifact can't be found
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrConstructorMismatch is returned when an artifact's constructor doesn't fit the variant
	ErrConstructorMismatch = errors.New("constructor mismatch")

	// ErrDeployFailed is returned when the deployment framework reports a failure
	ErrDeployFailed = errors.New("deployment failed")
)

type MissingConfigValueError struct {
	Key     string
	Variant ContractVariant
}

func (e MissingConfigValueError) Error() string {
	if e.Variant == "" {
		return fmt.Sprintf("missing config value %s", e.Key)
	}
	return fmt.Sprintf("missing config value %s (required by variant %s)", e.Key, e.Variant)
}

func (e MissingConfigValueError) Unwrap() error {
	return ErrMissingConfigValue
}

type UnknownVariantError struct {
	Tag         string
	Suggestions []string
}

func (e UnknownVariantError) Error() string {
	msg := fmt.Sprintf("unknown contract variant %q", e.Tag)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e UnknownVariantError) Unwrap() error {
	return ErrUnknownVariant
}

type ConstructorMismatchError struct {
	Artifact string
	Variant  ContractVariant
	Expected int
	Actual   int
}

func (e ConstructorMismatchError) Error() string {
	return fmt.Sprintf("artifact %s constructor takes %d arguments but variant %s supplies %d",
		e.Artifact, e.Actual, e.Variant, e.Expected)
}

func (e ConstructorMismatchError) Unwrap() error {
	return ErrConstructorMismatch
}
