// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"context"
	"net/http"

	"github.com/ternaustralia/tern-uppy/sdk/companion"
)

// Download opens /projects/{id}. The returned stream is owned by the
// caller and must be closed.
func (s *ProviderService) Download(ctx context.Context, req companion.ItemRequest) (*companion.DownloadResult, error) {
	return run(ctx, s, opDownload, func(ctx context.Context) (*companion.DownloadResult, error) {
		core := s.client(req.Token)

		resp, err := core.Stream(ctx, http.MethodGet, core.BuildURL(projectsResource, req.ID))
		if err != nil {
			return nil, err
		}
		stream, err := companion.PrepareStream(resp)
		if err != nil {
			return nil, err
		}
		return &companion.DownloadResult{Stream: stream, Size: resp.ContentLength}, nil
	})
}
