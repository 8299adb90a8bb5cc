// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package listing

import (
	"bytes"
	"encoding/json"
)

// ID is an upstream identifier kept as raw JSON: projects use integers,
// tasks use UUID strings, and the normalized listing must echo the same type.
type ID struct {
	raw json.RawMessage
}

func NumberID(n int64) ID {
	b, _ := json.Marshal(n)
	return ID{raw: b}
}

func StringID(s string) ID {
	b, _ := json.Marshal(s)
	return ID{raw: b}
}

func (id *ID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		id.raw = nil
		return nil
	}
	id.raw = append(id.raw[:0], b...)
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	if len(id.raw) == 0 {
		return []byte("null"), nil
	}
	return id.raw, nil
}

// Raw returns the JSON form of id, nil when absent.
func (id ID) Raw() json.RawMessage {
	if len(id.raw) == 0 {
		return nil
	}
	return append(json.RawMessage(nil), id.raw...)
}

// String renders id for use inside a request path.
func (id ID) String() string {
	if len(id.raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(id.raw, &s) == nil {
		return s
	}
	return string(id.raw)
}

// Payload is a decoded upstream response: ContainerList or TaskAssets.
type Payload interface {
	payload()
}

// Container is one folder-like entry of an array response: Project or Task.
type Container interface {
	container()
}

// ContainerList is the response of /projects/ and /projects/{id}/tasks/.
type ContainerList []Container

// Project as returned by /projects/. The presence of "tasks" is what
// distinguishes it from a Task.
type Project struct {
	ID          ID      `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CreatedAt   *string `json:"created_at"`
	Tasks       []ID    `json:"tasks"`
}

// Task as returned by /projects/{id}/tasks/.
type Task struct {
	ID          ID      `json:"id"`
	Project     ID      `json:"project"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CreatedAt   *string `json:"created_at"`
}

// TaskAssets is the single-task response of /projects/{id}/tasks/{tid}/.
type TaskAssets struct {
	Task
	AvailableAssets []string `json:"available_assets"`
}

func (ContainerList) payload() {}
func (TaskAssets) payload()    {}

func (Project) container() {}
func (Task) container()    {}
