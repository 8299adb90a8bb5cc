// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

// Package provider implements the ASDC (WebODM) provider for the upload host.
package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/ternaustralia/tern-uppy/sdk/companion"
	"github.com/ternaustralia/tern-uppy/sdk/config"
	"github.com/ternaustralia/tern-uppy/sdk/logging"
	"github.com/ternaustralia/tern-uppy/sdk/metrics"
)

const (
	// AuthProvider is the identifier the host routes /connect/asdc with.
	AuthProvider = "asdc"

	DefaultBaseURL = "https://asdc.cloud.edu.au"

	projectsResource = "projects"
)

// Operation names, used in error tags and metric labels.
const (
	opList     = "list"
	opDownload = "download"
	opSize     = "size"
	opLogout   = "logout"
)

var _ companion.Provider = (*ProviderService)(nil)

// ProviderService holds only immutable configuration. Every call builds
// its own authenticated client from the token it is given.
type ProviderService struct {
	companion.BaseProvider

	core       config.CoreConfig
	httpClient *http.Client
	classifier companion.ErrorClassifier
	logger     *zap.Logger
}

func NewProviderService(_ context.Context, conf config.Config, opts ...Option) (*ProviderService, error) {
	core := conf.Core
	if core.BaseURL == "" {
		core.BaseURL = DefaultBaseURL
	}
	if core.APIPrefix == "" {
		core.APIPrefix = config.DefaultAPIPrefix
	}
	core.AccessToken = ""

	u, err := url.Parse(core.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.New("invalid core config: base url must be absolute")
	}

	s := &ProviderService{
		core:       core,
		classifier: asdcClassifier{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.OrNop(s.logger).With(zap.String("provider", AuthProvider))
	return s, nil
}

// Factory adapts NewProviderService to the host construction contract.
func Factory(opts ...Option) companion.Factory {
	return func(po companion.ProviderOptions) (companion.Provider, error) {
		return NewProviderService(context.Background(), config.Config{
			Core: config.CoreConfig{BaseURL: po.BaseURL},
		}, opts...)
	}
}

// Register makes the provider available under AuthProvider.
func Register(r *companion.Registry, opts ...Option) {
	r.Register(AuthProvider, Factory(opts...))
}

func (s *ProviderService) AuthProvider() string {
	return AuthProvider
}

// BaseURL is the resolved upstream base, after defaulting.
func (s *ProviderService) BaseURL() string {
	return s.core.BaseURL
}

// client returns an HTTP core that authenticates with token.
func (s *ProviderService) client(token string) config.CoreHTTP {
	core := s.core
	core.AccessToken = token
	return config.NewHTTPCore(s.httpClient, core)
}

func errorTag(op string) string {
	return fmt.Sprintf("provider.%s.%s.error", AuthProvider, op)
}

// run executes one upstream operation under the host error handling and
// records its outcome.
func run[T any](ctx context.Context, s *ProviderService, op string, fn func(context.Context) (T, error)) (T, error) {
	start := time.Now()
	res, err := companion.WithProviderErrorHandling(ctx, companion.ErrorHandlingOptions{
		Tag:          errorTag(op),
		ProviderName: AuthProvider,
		Classifier:   s.classifier,
		Logger:       s.logger,
	}, fn)

	outcome := metrics.OutcomeOK
	switch {
	case companion.IsAuthError(err):
		outcome = metrics.OutcomeAuthError
	case err != nil:
		outcome = metrics.OutcomeError
	}
	metrics.RecordUpstream(op, outcome, time.Since(start))
	return res, err
}
