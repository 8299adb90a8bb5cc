// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

// Package companion models the upload-proxy host: the contract a remote
// provider implements and the helpers the host lends it.
package companion

import (
	"context"
	"encoding/json"
	"errors"
	"io"
)

// ErrNotImplemented is the host default for operations a provider opts out of.
var ErrNotImplemented = errors.New("method not implemented")

// Provider is the capability set the host drives for one remote service.
type Provider interface {
	// AuthProvider is the static identifier used in /connect/<provider> routing.
	AuthProvider() string

	List(ctx context.Context, req ListRequest) (*Listing, error)
	Download(ctx context.Context, req ItemRequest) (*DownloadResult, error)
	Size(ctx context.Context, req ItemRequest) (int64, error)
	Thumbnail(ctx context.Context, req ItemRequest) (*ThumbnailResult, error)
	Logout(ctx context.Context, req LogoutRequest) (*LogoutResult, error)
}

// ProviderOptions is the configuration object the host constructs providers with.
type ProviderOptions struct {
	BaseURL string `json:"baseUrl,omitempty"`
}

type ListRequest struct {
	Token string
	// Directory is a decoded request path; empty lists the root.
	Directory string
}

type ItemRequest struct {
	ID    string
	Token string
}

type LogoutRequest struct {
	Token string
}

// DownloadResult hands an open stream to the host, which must close it.
type DownloadResult struct {
	Stream io.ReadCloser
	// Size is the announced length, -1 when unknown.
	Size int64
}

type ThumbnailResult struct {
	Stream      io.ReadCloser
	ContentType string
}

type LogoutResult struct {
	Revoked bool `json:"revoked"`
	// ManualRevokeURL is only meaningful when Revoked is false.
	ManualRevokeURL string `json:"manual_revoke_url,omitempty"`
}

// Listing is the folder/file structure the host file picker renders.
type Listing struct {
	Username     *string `json:"username"`
	Items        []Item  `json:"items"`
	NextPagePath *string `json:"nextPagePath"`
}

type Item struct {
	IsFolder     bool            `json:"isFolder"`
	Icon         string          `json:"icon"`
	Name         *string         `json:"name"`
	MimeType     *string         `json:"mimeType"`
	ID           json.RawMessage `json:"id"`
	RequestPath  string          `json:"requestPath"`
	ModifiedDate *string         `json:"modifiedDate,omitempty"`
	Size         *int64          `json:"size"`
	Custom       json.RawMessage `json:"custom,omitempty"`
}

// MarshalJSON always emits modifiedDate for folders, as null when the
// creation time is unknown. File items leave it out.
func (it Item) MarshalJSON() ([]byte, error) {
	type item Item
	if !it.IsFolder {
		return json.Marshal(item(it))
	}
	return json.Marshal(struct {
		item
		ModifiedDate *string `json:"modifiedDate"`
	}{item(it), it.ModifiedDate})
}

const (
	IconFolder = "folder"
	IconFile   = "file"
)

// BaseProvider supplies the host's default behaviour. Providers embed it
// and override what their upstream supports.
type BaseProvider struct{}

func (BaseProvider) Thumbnail(_ context.Context, _ ItemRequest) (*ThumbnailResult, error) {
	return nil, ErrNotImplemented
}

func (BaseProvider) Logout(_ context.Context, _ LogoutRequest) (*LogoutResult, error) {
	return nil, ErrNotImplemented
}
