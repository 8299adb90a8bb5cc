// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ternaustralia/tern-uppy/sdk/companion"
	"github.com/ternaustralia/tern-uppy/sdk/metrics"
	"github.com/ternaustralia/tern-uppy/sdk/utils"
)

// Fetch downloads one asset through the provider and writes it to
// req.Destination. Provider errors are returned unchanged.
func (s *TransferService) Fetch(ctx context.Context, req FetchRequest) (*FetchInfo, error) {
	if req.ID == "" {
		return nil, errors.New("id is mandatory")
	}
	filename := path.Base(strings.TrimSuffix(req.ID, "/"))
	if filename == "." || filename == "/" {
		return nil, fmt.Errorf("cannot derive a filename from %q", req.ID)
	}

	dest := &utils.ParsedPath{}
	if req.Destination != "" {
		pp, err := utils.ParsePath(req.Destination)
		if err != nil {
			return nil, err
		}
		dest = pp
	}
	var target string
	switch dest.Scheme {
	case "":
		t, err := chooseLocalTarget(req.Destination, filename)
		if err != nil {
			return nil, err
		}
		target = t
	case "s3":
		if s.s3 == nil {
			return nil, ErrS3NotConfigured
		}
	default:
		return nil, fmt.Errorf("unsupported destination scheme %q", dest.Scheme)
	}

	res, err := s.provider.Download(ctx, companion.ItemRequest{ID: req.ID, Token: req.Token})
	if err != nil {
		return nil, err
	}
	defer res.Stream.Close()

	var out io.Writer
	if req.Verbose {
		out = s.progress
	}
	pw := newProgressWriter(out, res.Size, "downloaded")
	body := io.TeeReader(res.Stream, pw)

	var info *FetchInfo
	if dest.Scheme == "s3" {
		info, err = s.toS3(ctx, dest, filename, body)
	} else {
		info, err = s.toFile(target, body)
	}
	pw.finish()
	if err != nil {
		return nil, err
	}
	info.Size = pw.done

	metrics.AddTransferBytes(info.Destination, info.Size)
	s.logger.Info("asset transferred",
		zap.String("id", req.ID),
		zap.String("destination", info.Destination),
		zap.String("path", info.Path),
		zap.Int64("bytes", info.Size))
	return info, nil
}

func (s *TransferService) toFile(target string, body io.Reader) (*FetchInfo, error) {
	f, err := os.Create(target)
	if err != nil {
		return nil, err
	}
	_, err = io.Copy(f, body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(target)
		return nil, fmt.Errorf("failed to write %s: %w", target, err)
	}

	return &FetchInfo{
		Filename:    filepath.Base(target),
		Path:        target,
		Destination: DestinationFile,
	}, nil
}

func (s *TransferService) toS3(ctx context.Context, dest *utils.ParsedPath, filename string, body io.Reader) (*FetchInfo, error) {
	key := strings.TrimPrefix(dest.Path, "/")
	if key == "" || strings.HasSuffix(key, "/") {
		key += filename
	}

	location, err := s.s3.UploadStream(ctx, dest.Host, key, body, utils.GuessMimeType(key))
	if err != nil {
		return nil, err
	}
	return &FetchInfo{
		Filename:    path.Base(key),
		Path:        location,
		Destination: DestinationS3,
	}, nil
}

// chooseLocalTarget resolves dst:
// - empty → filename in the cwd
// - existing directory, or a path ending in a separator → dst/filename
// - anything else → dst itself, creating its parent directories
func chooseLocalTarget(dst, filename string) (string, error) {
	if dst == "" {
		return filename, nil
	}
	info, statErr := os.Stat(dst)
	switch {
	case statErr == nil && info.IsDir():
		return filepath.Join(dst, filename), nil
	case statErr == nil:
		return dst, nil
	case !os.IsNotExist(statErr):
		return "", statErr
	}

	if strings.HasSuffix(dst, "/") || strings.HasSuffix(dst, string(os.PathSeparator)) {
		if err := os.MkdirAll(dst, 0o755); err != nil {
			return "", err
		}
		return filepath.Join(dst, filename), nil
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	return dst, nil
}
