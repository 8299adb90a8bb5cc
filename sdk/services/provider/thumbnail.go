// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"context"

	"github.com/ternaustralia/tern-uppy/sdk/companion"
)

// Thumbnail is not offered by WebODM; the host default answers.
func (s *ProviderService) Thumbnail(ctx context.Context, req companion.ItemRequest) (*companion.ThumbnailResult, error) {
	return s.BaseProvider.Thumbnail(ctx, req)
}
