// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package transfer

type FetchRequest struct {
	Token string
	// ID is a decoded asset request path, as in a listing file item.
	ID string
	// Destination is a local path or s3://bucket/key. A trailing "/" or an
	// existing directory keeps the asset filename.
	Destination string
	Verbose     bool
}

// Destination kinds, also used as metric labels.
const (
	DestinationFile = "file"
	DestinationS3   = "s3"
)

type FetchInfo struct {
	Filename    string `json:"filename"    yaml:"filename"`
	Size        int64  `json:"size"        yaml:"size"`
	Path        string `json:"path"        yaml:"path"`
	Destination string `json:"destination" yaml:"destination"`
}
