// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

// Package transfer copies provider download streams to a local file or an
// S3 bucket on behalf of the host.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/ternaustralia/tern-uppy/sdk/companion"
	"github.com/ternaustralia/tern-uppy/sdk/config"
	"github.com/ternaustralia/tern-uppy/sdk/logging"
)

var ErrS3NotConfigured = errors.New("s3 destination requested but s3 is not configured")

type TransferService struct {
	provider companion.Provider
	s3       *config.S3Client
	logger   *zap.Logger
	progress io.Writer
}

type Option func(*TransferService)

func WithLogger(l *zap.Logger) Option {
	return func(s *TransferService) { s.logger = l }
}

// WithProgressOutput redirects verbose progress lines (stderr by default).
func WithProgressOutput(w io.Writer) Option {
	return func(s *TransferService) { s.progress = w }
}

// NewTransferService wraps p. The S3 client is only built when conf.S3
// carries a region or endpoint.
func NewTransferService(ctx context.Context, conf config.Config, p companion.Provider, opts ...Option) (*TransferService, error) {
	if p == nil {
		return nil, errors.New("nil provider")
	}
	s := &TransferService{provider: p, progress: os.Stderr}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.OrNop(s.logger)

	if conf.S3.Enabled() {
		s3c, err := config.NewS3Client(ctx, conf.S3)
		if err != nil {
			return nil, fmt.Errorf("S3 init failed: %w", err)
		}
		s.s3 = s3c
	}
	return s, nil
}
