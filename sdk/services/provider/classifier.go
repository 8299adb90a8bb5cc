// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"net/http"

	"github.com/ternaustralia/tern-uppy/sdk/companion"
)

// asdcClassifier treats 401 as an expired or revoked token. Django REST
// framework reports errors under "detail" when no "message" is set.
type asdcClassifier struct{}

func (asdcClassifier) IsAuthError(resp companion.ResponseError) bool {
	return resp.HTTPStatus() == http.StatusUnauthorized
}

func (asdcClassifier) JSONErrorMessage(body map[string]any) string {
	if msg, ok := body["message"].(string); ok && msg != "" {
		return msg
	}
	msg, _ := body["detail"].(string)
	return msg
}
