// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/ternaustralia/tern-uppy/sdk/companion"
	"github.com/ternaustralia/tern-uppy/sdk/services/listing"
)

// List fetches /projects/ or /projects/{directory}. Directory is a decoded
// request path taken from a previous listing.
func (s *ProviderService) List(ctx context.Context, req companion.ListRequest) (*companion.Listing, error) {
	return run(ctx, s, opList, func(ctx context.Context) (*companion.Listing, error) {
		core := s.client(req.Token)
		url := core.BuildURL(projectsResource, req.Directory)

		body, _, err := core.Do(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		out, err := listing.AdaptJSON(body)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("listed directory",
			zap.String("directory", req.Directory),
			zap.Int("items", len(out.Items)))
		return out, nil
	})
}
