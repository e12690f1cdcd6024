package cli

import (
	"fmt"

	"task-tracker/internal/config"
	"task-tracker/internal/errors"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for configuration and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if cfgErr, ok := err.(*config.ConfigError); ok {
		return fmt.Errorf("failed to %s: %s", operation, cfgErr.Error())
	}

	if appErr, ok := errors.AsAppError(err); ok {
		// Handle only sees failures that abort the process, so the cause is shown
		if appErr.IsType(errors.ErrorTypeDatabase) && appErr.Cause != nil {
			return fmt.Errorf("failed to %s: %s: %v", operation, appErr.Message, appErr.Cause)
		}
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
