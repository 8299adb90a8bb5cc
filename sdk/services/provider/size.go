// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/ternaustralia/tern-uppy/sdk/companion"
)

// UnknownSize is returned by Size when the upstream sends no usable
// Content-Length.
const UnknownSize int64 = -1

// Size issues HEAD /projects/{id} and reports Content-Length.
func (s *ProviderService) Size(ctx context.Context, req companion.ItemRequest) (int64, error) {
	return run(ctx, s, opSize, func(ctx context.Context) (int64, error) {
		core := s.client(req.Token)

		header, _, err := core.Head(ctx, core.BuildURL(projectsResource, req.ID))
		if err != nil {
			return UnknownSize, err
		}

		raw := header.Get("Content-Length")
		n, ok := parseContentLength(raw)
		if !ok {
			s.logger.Debug("no usable content-length", zap.String("id", req.ID), zap.String("value", raw))
		}
		return n, nil
	})
}

func parseContentLength(v string) (int64, bool) {
	if v == "" {
		return UnknownSize, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return UnknownSize, false
	}
	return n, true
}
