// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package config

// Config is everything the SDK needs; viper and INI handling live in utils.
type Config struct {
	Core CoreConfig `json:"core"`
	S3   S3Config   `json:"s3"`
	Log  LogConfig  `json:"log"`
}

// CoreConfig addresses the upstream WebODM API.
type CoreConfig struct {
	BaseURL   string `json:"baseUrl"`
	APIPrefix string `json:"apiPrefix,omitempty"`

	// AccessToken is set per call from the host-supplied token and is never
	// read from or written to configuration files.
	AccessToken string `json:"-"`
}

type S3Config struct {
	AccessKey   string `json:"accessKey,omitempty"`
	SecretKey   string `json:"secretKey,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`
	Region      string `json:"region,omitempty"`
	EndpointURL string `json:"endpointUrl,omitempty"`
}

type LogConfig struct {
	Level  string `json:"level,omitempty"`  // debug, info, warn, error
	Format string `json:"format,omitempty"` // json, console
}

// DefaultAPIPrefix is the path segment WebODM serves its REST API under.
const DefaultAPIPrefix = "api"

// Enabled reports whether enough S3 settings are present to build a client.
func (c S3Config) Enabled() bool {
	return c.Region != "" || c.EndpointURL != ""
}
