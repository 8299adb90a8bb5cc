// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package companion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ResponseError is a failed upstream response as seen by the error handler.
type ResponseError interface {
	error
	HTTPStatus() int
	ResponseBody() []byte
}

// ErrorClassifier is the provider-specific half of error handling.
type ErrorClassifier interface {
	IsAuthError(resp ResponseError) bool
	// JSONErrorMessage extracts a human readable message from a decoded
	// JSON error body, or returns "".
	JSONErrorMessage(body map[string]any) string
}

// ProviderAPIError is any failure that does not call for re-authentication.
// StatusCode is 0 when no upstream response was received.
type ProviderAPIError struct {
	Tag          string
	ProviderName string
	StatusCode   int
	Message      string
	Err          error
}

func (e *ProviderAPIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Tag, e.Message)
}

func (e *ProviderAPIError) Unwrap() error { return e.Err }

// ProviderAuthError tells the host to send the user through auth again.
type ProviderAuthError struct {
	Tag          string
	ProviderName string
	Message      string
	Err          error
}

func (e *ProviderAuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Tag, e.Message)
}

func (e *ProviderAuthError) Unwrap() error { return e.Err }

// IsAuthError reports whether err, or anything it wraps, is a ProviderAuthError.
func IsAuthError(err error) bool {
	var authErr *ProviderAuthError
	return errors.As(err, &authErr)
}

type ErrorHandlingOptions struct {
	Tag          string
	ProviderName string
	Classifier   ErrorClassifier
	Logger       *zap.Logger
}

// WithProviderErrorHandling runs fn once and converts a failure into the
// host's error shape. Nothing is retried.
func WithProviderErrorHandling[T any](ctx context.Context, opts ErrorHandlingOptions, fn func(context.Context) (T, error)) (T, error) {
	result, err := fn(ctx)
	if err == nil {
		return result, nil
	}
	var zero T
	return zero, classify(opts, err)
}

func classify(opts ErrorHandlingOptions, err error) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	classifier := opts.Classifier
	if classifier == nil {
		classifier = noClassifier{}
	}
	fields := []zap.Field{
		zap.String("tag", opts.Tag),
		zap.String("provider", opts.ProviderName),
	}

	var respErr ResponseError
	if !errors.As(err, &respErr) {
		logger.Error("provider request failed", append(fields, zap.Error(err))...)
		return &ProviderAPIError{
			Tag:          opts.Tag,
			ProviderName: opts.ProviderName,
			Message:      err.Error(),
			Err:          err,
		}
	}

	status := respErr.HTTPStatus()
	fields = append(fields, zap.Int("status", status))

	var message string
	var body map[string]any
	if json.Unmarshal(respErr.ResponseBody(), &body) == nil {
		message = classifier.JSONErrorMessage(body)
	}

	if classifier.IsAuthError(respErr) {
		if message == "" {
			message = "invalid access token detected by provider"
		}
		logger.Warn("provider auth error", fields...)
		return &ProviderAuthError{
			Tag:          opts.Tag,
			ProviderName: opts.ProviderName,
			Message:      message,
			Err:          err,
		}
	}

	if message == "" {
		message = fmt.Sprintf("request to %s returned %d", opts.ProviderName, status)
	}
	logger.Error("provider api error", append(fields, zap.String("message", message))...)
	return &ProviderAPIError{
		Tag:          opts.Tag,
		ProviderName: opts.ProviderName,
		StatusCode:   status,
		Message:      message,
		Err:          err,
	}
}

type noClassifier struct{}

func (noClassifier) IsAuthError(ResponseError) bool         { return false }
func (noClassifier) JSONErrorMessage(map[string]any) string { return "" }
