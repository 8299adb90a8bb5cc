// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package companion

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody caps how much of a failed stream is read for its message.
const maxErrorBody = 64 << 10

var errNilResponse = errors.New("nil response")

// StreamError is a download stream that failed before its payload was read.
type StreamError struct {
	Code   int
	Status string
	Body   []byte
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("stream responded with: %s", e.Status)
}

func (e *StreamError) HTTPStatus() int      { return e.Code }
func (e *StreamError) ResponseBody() []byte { return e.Body }

// PrepareStream validates a streaming response before any payload is
// handed on. Non-2xx responses are drained (bounded), closed and returned
// as a *StreamError.
func PrepareStream(resp *http.Response) (io.ReadCloser, error) {
	if resp == nil {
		return nil, errNilResponse
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp.Body, nil
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return nil, &StreamError{Code: resp.StatusCode, Status: resp.Status, Body: body}
}
