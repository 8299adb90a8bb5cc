// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternaustralia/tern-uppy/sdk/config"
)

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asdc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
core:
  baseUrl: https://webodm.example.org
s3:
  region: ap-southeast-2
  endpointUrl: http://minio:9000
log:
  level: debug
  format: console
`), 0o600))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://webodm.example.org", cfg.Core.BaseURL)
	assert.Empty(t, cfg.Core.AccessToken)
	assert.Equal(t, "ap-southeast-2", cfg.S3.Region)
	assert.True(t, cfg.S3.Enabled())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asdc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"core":{"baseUrl":"http://localhost:8000","apiPrefix":"api"}}`), 0o600))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.Core.BaseURL)
	assert.False(t, cfg.S3.Enabled())
}

func TestLoadFileErrors(t *testing.T) {
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("core: [unterminated"), 0o600))
	_, err = config.LoadFile(path)
	assert.ErrorContains(t, err, "failed to parse config file")
}
