// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"context"

	"go.uber.org/zap"

	"github.com/ternaustralia/tern-uppy/sdk/companion"
)

// Logout always reports success: the upstream has no revocation endpoint
// and the host discards its stored token itself.
func (s *ProviderService) Logout(_ context.Context, _ companion.LogoutRequest) (*companion.LogoutResult, error) {
	s.logger.Debug("logout", zap.String("operation", opLogout))
	return &companion.LogoutResult{Revoked: true}, nil
}
