// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

const upperHex = "0123456789ABCDEF"

// EncodeURIComponent escapes s the way browsers do for a single URI
// component: only A-Z a-z 0-9 - _ . ! ~ * ' ( ) are left alone, so "/"
// becomes %2F and a space becomes %20.
func EncodeURIComponent(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isComponentSafe(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperHex[c>>4])
		sb.WriteByte(upperHex[c&0x0f])
	}
	return sb.String()
}

func isComponentSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

type ParsedPath struct {
	Scheme   string // "" for local paths
	Host     string // bucket for s3
	Path     string
	Filename string
}

// ParsePath splits a transfer destination. Anything without "://" is a
// local filesystem path.
func ParsePath(p string) (*ParsedPath, error) {
	if p == "" {
		return nil, errors.New("empty path")
	}
	if !strings.Contains(p, "://") {
		return &ParsedPath{Path: p, Filename: filepath.Base(p)}, nil
	}

	u, err := url.Parse(p)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", p, err)
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme == "s3" && u.Host == "" {
		return nil, fmt.Errorf("missing bucket in %q", p)
	}

	filename := ""
	if u.Path != "" && !strings.HasSuffix(u.Path, "/") {
		filename = path.Base(u.Path)
	}
	return &ParsedPath{
		Scheme:   scheme,
		Host:     u.Host,
		Path:     u.Path,
		Filename: filename,
	}, nil
}
