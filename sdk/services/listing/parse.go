// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package listing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnexpectedShape = errors.New("unexpected upstream payload shape")

// Parse decodes an upstream body into a Payload. Arrays hold containers;
// any other JSON value must be a task object carrying available_assets.
func Parse(raw []byte) (Payload, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrUnexpectedShape)
	}

	if trimmed[0] == '[' {
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
		}
		list := make(ContainerList, 0, len(elems))
		for i, elem := range elems {
			c, err := parseContainer(elem)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			list = append(list, c)
		}
		return list, nil
	}

	keys, err := objectKeys(trimmed)
	if err != nil {
		return nil, err
	}
	if _, ok := keys["available_assets"]; !ok {
		return nil, fmt.Errorf("%w: object without available_assets", ErrUnexpectedShape)
	}
	var t TaskAssets
	if err := json.Unmarshal(trimmed, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	return t, nil
}

func parseContainer(elem json.RawMessage) (Container, error) {
	keys, err := objectKeys(elem)
	if err != nil {
		return nil, err
	}

	if _, ok := keys["tasks"]; ok {
		var p Project
		if err := json.Unmarshal(elem, &p); err != nil {
			return nil, fmt.Errorf("%w: project: %v", ErrUnexpectedShape, err)
		}
		return p, nil
	}

	var t Task
	if err := json.Unmarshal(elem, &t); err != nil {
		return nil, fmt.Errorf("%w: task: %v", ErrUnexpectedShape, err)
	}
	return t, nil
}

func objectKeys(raw []byte) (map[string]json.RawMessage, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, fmt.Errorf("%w: not an object", ErrUnexpectedShape)
	}
	if keys == nil {
		return nil, fmt.Errorf("%w: null", ErrUnexpectedShape)
	}
	return keys, nil
}
