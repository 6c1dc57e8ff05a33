// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// User-facing error kinds. Both block the attempted action and leave state untouched.
var (
	ErrMissingSelection = errors.New("missing selection")
	ErrIncompleteForm   = errors.New("incomplete form")

	// ErrOfferNotCalculated is the missing selection raised when no offer has been calculated yet.
	ErrOfferNotCalculated = fmt.Errorf("%w: no offer calculated", ErrMissingSelection)
)

// Lookup and sequencing errors.
var (
	ErrUnknownBrand         = errors.New("unknown brand")
	ErrUnknownModel         = errors.New("unknown model")
	ErrUnknownCondition     = errors.New("unknown condition")
	ErrUnknownIssue         = errors.New("unknown issue")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrInvalidTransition    = errors.New("invalid transition")
)

// ExitError carries a process exit code alongside the message shown to the user.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ErrorInfo provides user-friendly error information.
type ErrorInfo struct {
	Message     string   // Blocking message shown to the user
	Suggestions []string // Actionable suggestions
}

// getErrorMatchers returns the sentinel errors and their corresponding info, most specific first.
func getErrorMatchers() []struct {
	target  error
	getInfo func(err error) ErrorInfo
} {
	return []struct {
		target  error
		getInfo func(err error) ErrorInfo
	}{
		{
			target: ErrIncompleteForm,
			getInfo: func(_ error) ErrorInfo {
				return ErrorInfo{
					Message:     "Please complete all fields.",
					Suggestions: []string{"Name, phone, address and pickup date are required"},
				}
			},
		},
		{
			target: ErrOfferNotCalculated,
			getInfo: func(_ error) ErrorInfo {
				return ErrorInfo{
					Message:     "Please calculate price first!",
					Suggestions: []string{"Answer the condition questions to get an offer"},
				}
			},
		},
		{
			target: ErrMissingSelection,
			getInfo: func(_ error) ErrorInfo {
				return ErrorInfo{
					Message:     "Please select a brand and model",
					Suggestions: []string{"Pick a brand, then a model, or search by model name"},
				}
			},
		},
		{
			target: ErrUnknownBrand,
			getInfo: func(_ error) ErrorInfo {
				return ErrorInfo{
					Message:     "Brand not found",
					Suggestions: []string{"Run 'tradein brands' to see supported brands"},
				}
			},
		},
		{
			target: ErrUnknownModel,
			getInfo: func(_ error) ErrorInfo {
				return ErrorInfo{
					Message:     "Model not found",
					Suggestions: []string{"Run 'tradein models <brand>' or 'tradein search <name>'"},
				}
			},
		},
		{
			target: ErrUnknownCondition,
			getInfo: func(_ error) ErrorInfo {
				return ErrorInfo{
					Message:     "Unknown condition",
					Suggestions: []string{"Use one of: excellent, good, fair"},
				}
			},
		},
		{
			target: ErrUnknownIssue,
			getInfo: func(_ error) ErrorInfo {
				return ErrorInfo{
					Message:     "Unknown issue",
					Suggestions: []string{"Use one of: screen, battery, camera, audio, charging"},
				}
			},
		},
		{
			target: ErrUnknownPaymentMethod,
			getInfo: func(_ error) ErrorInfo {
				return ErrorInfo{
					Message:     "Unknown payment method",
					Suggestions: []string{"Use one of: cod, upi, bank"},
				}
			},
		},
		{
			target: ErrInvalidTransition,
			getInfo: func(_ error) ErrorInfo {
				return ErrorInfo{
					Message:     "That action is not available right now",
					Suggestions: []string{"Close the open dialog first"},
				}
			},
		},
	}
}

// GetErrorInfo analyzes an error and returns user-friendly information.
func GetErrorInfo(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{}
	}

	for _, matcher := range getErrorMatchers() {
		if errors.Is(err, matcher.target) {
			return matcher.getInfo(err)
		}
	}

	return ErrorInfo{
		Message:     "Something went wrong",
		Suggestions: []string{"Run with --verbose for more details"},
	}
}

// UserMessage returns the blocking message for err, or "" when err is nil.
func UserMessage(err error) string {
	return GetErrorInfo(err).Message
}

// FormatErrorMessage formats an error for display on the console.
func FormatErrorMessage(err error, verbose bool) string {
	if err == nil {
		return ""
	}

	info := GetErrorInfo(err)

	var result strings.Builder

	result.WriteString(info.Message)

	if verbose {
		result.WriteString("\n  Technical details: ")
		result.WriteString(err.Error())
	}

	switch {
	case len(info.Suggestions) == 0:
	case verbose:
		result.WriteString("\n  Suggestions:")

		for _, suggestion := range info.Suggestions {
			result.WriteString("\n    • ")
			result.WriteString(suggestion)
		}
	default:
		result.WriteString(" (")
		result.WriteString(info.Suggestions[0])
		result.WriteString(")")
	}

	return result.String()
}
