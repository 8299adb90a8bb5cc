// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// RequestIDHeader carries a per-request correlation id to the upstream API.
const RequestIDHeader = "X-Request-ID"

type CoreHTTP interface {
	BuildURL(resource, path string) string
	Do(ctx context.Context, method, url string, data []byte) ([]byte, int, error)
	Stream(ctx context.Context, method, url string) (*http.Response, error)
	Head(ctx context.Context, url string) (http.Header, int, error)
}

// HTTPError is a non-2xx upstream response. Body holds whatever the
// upstream sent back, usually JSON with a "message" field.
type HTTPError struct {
	Code   int
	Status string
	Body   []byte
}

func (e *HTTPError) Error() string {
	var m map[string]any
	if json.Unmarshal(e.Body, &m) == nil {
		if msg, ok := m["message"].(string); ok && msg != "" {
			return fmt.Sprintf("upstream responded with: %s - %s", e.Status, msg)
		}
	}
	return fmt.Sprintf("upstream responded with: %s", e.Status)
}

func (e *HTTPError) HTTPStatus() int      { return e.Code }
func (e *HTTPError) ResponseBody() []byte { return e.Body }

type httpCore struct {
	httpClient *http.Client
	coreConfig CoreConfig
}

func NewHTTPCore(httpClient *http.Client, coreConfig CoreConfig) CoreHTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if coreConfig.APIPrefix == "" {
		coreConfig.APIPrefix = DefaultAPIPrefix
	}
	return &httpCore{httpClient: httpClient, coreConfig: coreConfig}
}

// BuildURL returns {base}/{prefix}/{resource}/{path}. path is a decoded,
// slash-separated request path; each segment is escaped and a trailing
// slash is kept because WebODM routes are slash-terminated.
func (httpCore *httpCore) BuildURL(resource, path string) string {
	base := strings.TrimSuffix(httpCore.coreConfig.BaseURL, "/")
	base += "/" + strings.Trim(httpCore.coreConfig.APIPrefix, "/")
	base += "/" + resource + "/"
	if path != "" {
		base += escapePath(strings.TrimPrefix(path, "/"))
	}
	return base
}

func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

func (httpCore *httpCore) newRequest(ctx context.Context, method, url string, data []byte) (*http.Request, error) {
	var body io.Reader
	if data != nil {
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(RequestIDHeader, uuid.NewString())

	if tok := httpCore.coreConfig.AccessToken; tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return req, nil
}

func (httpCore *httpCore) Do(ctx context.Context, method, url string, data []byte) ([]byte, int, error) {
	req, err := httpCore.newRequest(ctx, method, url, data)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpCore.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	b, rerr := io.ReadAll(resp.Body)
	if !isSuccess(resp.StatusCode) {
		return b, resp.StatusCode, &HTTPError{Code: resp.StatusCode, Status: resp.Status, Body: b}
	}
	return b, resp.StatusCode, rerr
}

// Stream sends the request and returns the response as soon as headers
// arrive. The status is not checked and the caller owns the body.
func (httpCore *httpCore) Stream(ctx context.Context, method, url string) (*http.Response, error) {
	req, err := httpCore.newRequest(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	return httpCore.httpClient.Do(req)
}

func (httpCore *httpCore) Head(ctx context.Context, url string) (http.Header, int, error) {
	req, err := httpCore.newRequest(ctx, http.MethodHead, url, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := httpCore.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return resp.Header, resp.StatusCode, &HTTPError{Code: resp.StatusCode, Status: resp.Status}
	}
	return resp.Header, resp.StatusCode, nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
