// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ternaustralia/tern-uppy/sdk/companion"
)

type Option func(*ProviderService)

// WithHTTPClient sets the client used for upstream calls. Timeouts and
// transport policy are the client's concern.
func WithHTTPClient(c *http.Client) Option {
	return func(s *ProviderService) {
		s.httpClient = c
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *ProviderService) {
		s.logger = l
	}
}

func WithClassifier(c companion.ErrorClassifier) Option {
	return func(s *ProviderService) {
		if c != nil {
			s.classifier = c
		}
	}
}
