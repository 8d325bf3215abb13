// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package builderrors

import (
	"errors"
	"fmt"
	"strings"
)

const (
	ResolutionFailed = "RESOLUTION_FAILED"
	ExtractionFailed = "EXTRACTION_FAILED"
	Incompatible     = "INCOMPATIBLE_DEPENDENCY"
	BadConfiguration = "BAD_CONFIGURATION"
	UnknownErrorCode = "UNKNOWN_ERROR"
)

// ResolutionError reports that no repository yielded the requested artifact.
// It carries every repository URL tried so that a misconfigured repository
// list is diagnosable from the error message alone.
type ResolutionError struct {
	Coordinate   string
	Repositories []string
	Cause        error
}

func NewResolutionError(coordinate string, repositories []string, cause error) *ResolutionError {
	return &ResolutionError{Coordinate: coordinate, Repositories: repositories, Cause: cause}
}

func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf("failed to resolve %q", e.Coordinate)
	if len(e.Repositories) > 0 {
		msg += fmt.Sprintf(" (repositories tried: %s)", strings.Join(e.Repositories, ", "))
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ResolutionError) Unwrap() error {
	return e.Cause
}

// ExtractionError reports an unreadable archive or an interrupted extraction.
type ExtractionError struct {
	Archive string
	Cause   error
}

func NewExtractionError(archive string, cause error) *ExtractionError {
	return &ExtractionError{Archive: archive, Cause: cause}
}

func (e *ExtractionError) Error() string {
	msg := fmt.Sprintf("failed to extract %q", e.Archive)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// IncompatibilityError reports a plugin dependency whose declared build range
// excludes the resolved IDE build. Always fatal, never downgraded.
type IncompatibilityError struct {
	Descriptor string
	IdeBuild   string
	Since      string
	Until      string
}

func (e *IncompatibilityError) Error() string {
	r := e.Since
	if e.Until != "" {
		r += ".." + e.Until
	}
	return fmt.Sprintf("plugin %q declares compatibility range [%s] which excludes IDE build %s",
		e.Descriptor, r, e.IdeBuild)
}

// ConfigurationError reports unusable caller input, e.g. neither a local
// installation path nor a version was supplied, or offline mode was requested
// with an empty cache.
type ConfigurationError struct {
	Reason string
}

func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

var (
	_ error = (*ResolutionError)(nil)
	_ error = (*ExtractionError)(nil)
	_ error = (*IncompatibilityError)(nil)
	_ error = (*ConfigurationError)(nil)
)

// Code maps an error onto a stable report code.
func Code(err error) string {
	var (
		resErr    *ResolutionError
		extErr    *ExtractionError
		incompErr *IncompatibilityError
		confErr   *ConfigurationError
	)
	switch {
	case errors.As(err, &resErr):
		return ResolutionFailed
	case errors.As(err, &extErr):
		return ExtractionFailed
	case errors.As(err, &incompErr):
		return Incompatible
	case errors.As(err, &confErr):
		return BadConfiguration
	default:
		return UnknownErrorCode
	}
}
