// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package provider_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"github.com/ternaustralia/tern-uppy/sdk/companion"
	"github.com/ternaustralia/tern-uppy/sdk/config"
	"github.com/ternaustralia/tern-uppy/sdk/metrics"
	"github.com/ternaustralia/tern-uppy/sdk/services/listing"
	"github.com/ternaustralia/tern-uppy/sdk/services/provider"
)

const testToken = "tok-123"

type providerTestSuite struct {
	suite.Suite
	mux    *http.ServeMux
	server *httptest.Server
	svc    *provider.ProviderService
	ctx    context.Context
}

func (s *providerTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.ctx = context.Background()

	svc, err := provider.NewProviderService(s.ctx, config.Config{
		Core: config.CoreConfig{BaseURL: s.server.URL},
	}, provider.WithHTTPClient(s.server.Client()))
	s.Require().NoError(err)
	s.svc = svc
}

func (s *providerTestSuite) TearDownTest() {
	s.server.Close()
}

// handle registers h and asserts every request is authenticated.
func (s *providerTestSuite) handle(pattern string, h http.HandlerFunc) {
	s.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		s.Equal("Bearer "+testToken, r.Header.Get("Authorization"))
		s.NotEmpty(r.Header.Get(config.RequestIDHeader))
		h(w, r)
	})
}

func (s *providerTestSuite) TestAuthProvider() {
	s.Equal("asdc", s.svc.AuthProvider())
}

func (s *providerTestSuite) TestListRoot() {
	s.handle("GET /api/projects/", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/api/projects/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":1,"name":"P1","tasks":["t1"],"created_at":"2022-01-01"}]`)
	})

	out, err := s.svc.List(s.ctx, companion.ListRequest{Token: testToken})
	s.Require().NoError(err)
	s.Require().Len(out.Items, 1)
	s.Equal("1%2Ftasks%2F", out.Items[0].RequestPath)
	s.True(out.Items[0].IsFolder)
}

func (s *providerTestSuite) TestListDirectoryRoundTrip() {
	s.handle("GET /api/projects/1/tasks/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":"t1","project":1,"name":"Flight"}]`)
	})
	s.handle("GET /api/projects/1/tasks/t1/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":"t1","project":1,"available_assets":["ortho.tif","all.zip"]}`)
	})

	tasks, err := s.svc.List(s.ctx, companion.ListRequest{Token: testToken, Directory: "1/tasks/"})
	s.Require().NoError(err)
	s.Require().Len(tasks.Items, 1)
	s.Equal("1%2Ftasks%2Ft1%2F", tasks.Items[0].RequestPath)

	assets, err := s.svc.List(s.ctx, companion.ListRequest{Token: testToken, Directory: "1/tasks/t1/"})
	s.Require().NoError(err)
	s.Require().Len(assets.Items, 2)
	s.Equal("image/tiff", *assets.Items[0].MimeType)
	s.Equal("application/zip", *assets.Items[1].MimeType)
	s.Equal("1%2Ftasks%2Ft1%2Fdownload%2Fortho.tif", assets.Items[0].RequestPath)
}

func (s *providerTestSuite) TestListUnauthorized() {
	before := testutil.ToFloat64(metrics.UpstreamRequests().WithLabelValues("list", metrics.OutcomeAuthError))

	s.handle("GET /api/projects/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"detail":"Invalid token."}`)
	})

	_, err := s.svc.List(s.ctx, companion.ListRequest{Token: testToken})
	s.Require().Error(err)
	s.True(companion.IsAuthError(err))

	var authErr *companion.ProviderAuthError
	s.Require().ErrorAs(err, &authErr)
	s.Equal("provider.asdc.list.error", authErr.Tag)
	s.Equal("Invalid token.", authErr.Message)

	var httpErr *config.HTTPError
	s.Require().ErrorAs(err, &httpErr)
	s.Equal(http.StatusUnauthorized, httpErr.Code)

	after := testutil.ToFloat64(metrics.UpstreamRequests().WithLabelValues("list", metrics.OutcomeAuthError))
	s.Equal(before+1, after)
}

func (s *providerTestSuite) TestListServerErrorMessage() {
	s.handle("GET /api/projects/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"message":"database unavailable"}`)
	})

	_, err := s.svc.List(s.ctx, companion.ListRequest{Token: testToken})
	s.Require().Error(err)
	s.False(companion.IsAuthError(err))

	var apiErr *companion.ProviderAPIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal("provider.asdc.list.error", apiErr.Tag)
	s.Equal(http.StatusInternalServerError, apiErr.StatusCode)
	s.Equal("database unavailable", apiErr.Message)
}

func (s *providerTestSuite) TestListServerErrorWithoutBody() {
	s.handle("GET /api/projects/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := s.svc.List(s.ctx, companion.ListRequest{Token: testToken})

	var apiErr *companion.ProviderAPIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusBadGateway, apiErr.StatusCode)
	s.Equal("request to asdc returned 502", apiErr.Message)
}

func (s *providerTestSuite) TestListUnexpectedShape() {
	s.handle("GET /api/projects/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":"t1","project":1}`)
	})

	_, err := s.svc.List(s.ctx, companion.ListRequest{Token: testToken})
	s.Require().Error(err)
	s.ErrorIs(err, listing.ErrUnexpectedShape)

	var apiErr *companion.ProviderAPIError
	s.Require().ErrorAs(err, &apiErr)
	s.Zero(apiErr.StatusCode)
}

func (s *providerTestSuite) TestListNetworkFailure() {
	s.server.Close()

	_, err := s.svc.List(s.ctx, companion.ListRequest{Token: testToken})
	s.Require().Error(err)
	s.False(companion.IsAuthError(err))

	var apiErr *companion.ProviderAPIError
	s.Require().ErrorAs(err, &apiErr)
	s.Zero(apiErr.StatusCode)
}

func (s *providerTestSuite) TestDownload() {
	const payload = "II*\x00fake-tiff-bytes"
	s.handle("GET /api/projects/1/tasks/t1/download/ortho.tif", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/tiff")
		_, _ = io.WriteString(w, payload)
	})

	res, err := s.svc.Download(s.ctx, companion.ItemRequest{ID: "1/tasks/t1/download/ortho.tif", Token: testToken})
	s.Require().NoError(err)
	defer res.Stream.Close()

	b, err := io.ReadAll(res.Stream)
	s.Require().NoError(err)
	s.Equal(payload, string(b))
	s.Equal(int64(len(payload)), res.Size)
}

func (s *providerTestSuite) TestDownloadUnauthorized() {
	s.handle("GET /api/projects/1/tasks/t1/download/ortho.tif", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	res, err := s.svc.Download(s.ctx, companion.ItemRequest{ID: "1/tasks/t1/download/ortho.tif", Token: testToken})
	s.Nil(res)
	s.True(companion.IsAuthError(err))

	var authErr *companion.ProviderAuthError
	s.Require().ErrorAs(err, &authErr)
	s.Equal("provider.asdc.download.error", authErr.Tag)
}

func (s *providerTestSuite) TestDownloadNotFound() {
	s.handle("GET /api/projects/1/tasks/t1/download/missing.tif", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"asset not found"}`)
	})

	_, err := s.svc.Download(s.ctx, companion.ItemRequest{ID: "1/tasks/t1/download/missing.tif", Token: testToken})

	var apiErr *companion.ProviderAPIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusNotFound, apiErr.StatusCode)
	s.Equal("asset not found", apiErr.Message)

	var streamErr *companion.StreamError
	s.ErrorAs(err, &streamErr)
}

func (s *providerTestSuite) TestDownloadEscapesSegments() {
	s.mux.HandleFunc("GET /api/projects/", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/api/projects/2/tasks/t2/download/my%20model.laz", r.URL.EscapedPath())
		_, _ = io.WriteString(w, "x")
	})

	res, err := s.svc.Download(s.ctx, companion.ItemRequest{ID: "2/tasks/t2/download/my model.laz", Token: testToken})
	s.Require().NoError(err)
	s.Require().NoError(res.Stream.Close())
}

func (s *providerTestSuite) TestSize() {
	s.handle("HEAD /api/projects/1/tasks/t1/download/ortho.tif", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1234")
		w.WriteHeader(http.StatusOK)
	})

	n, err := s.svc.Size(s.ctx, companion.ItemRequest{ID: "1/tasks/t1/download/ortho.tif", Token: testToken})
	s.Require().NoError(err)
	s.Equal(int64(1234), n)
}

func (s *providerTestSuite) TestSizeWithoutContentLength() {
	s.handle("HEAD /api/projects/1/tasks/t1/download/ortho.tif", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	n, err := s.svc.Size(s.ctx, companion.ItemRequest{ID: "1/tasks/t1/download/ortho.tif", Token: testToken})
	s.Require().NoError(err)
	s.Equal(provider.UnknownSize, n)
}

func (s *providerTestSuite) TestSizeUnauthorized() {
	s.handle("HEAD /api/projects/1/tasks/t1/download/ortho.tif", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := s.svc.Size(s.ctx, companion.ItemRequest{ID: "1/tasks/t1/download/ortho.tif", Token: testToken})
	s.True(companion.IsAuthError(err))

	var authErr *companion.ProviderAuthError
	s.Require().ErrorAs(err, &authErr)
	s.Equal("provider.asdc.size.error", authErr.Tag)
}

func (s *providerTestSuite) TestSizeServerError() {
	s.handle("HEAD /api/projects/1/tasks/t1/download/ortho.tif", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := s.svc.Size(s.ctx, companion.ItemRequest{ID: "1/tasks/t1/download/ortho.tif", Token: testToken})

	var apiErr *companion.ProviderAPIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal("provider.asdc.size.error", apiErr.Tag)
	s.Equal(http.StatusInternalServerError, apiErr.StatusCode)
}

func (s *providerTestSuite) TestThumbnailUsesHostDefault() {
	res, err := s.svc.Thumbnail(s.ctx, companion.ItemRequest{ID: "1/tasks/t1/download/ortho.tif", Token: testToken})
	s.Nil(res)
	s.True(errors.Is(err, companion.ErrNotImplemented))
}

func (s *providerTestSuite) TestLogout() {
	for _, tok := range []string{"", testToken} {
		res, err := s.svc.Logout(s.ctx, companion.LogoutRequest{Token: tok})
		s.Require().NoError(err)
		s.True(res.Revoked)
		s.Empty(res.ManualRevokeURL)
	}
}

func TestProviderSuite(t *testing.T) {
	suite.Run(t, new(providerTestSuite))
}
