// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

// Package listing turns WebODM project, task and asset responses into the
// folder/file listing rendered by the host file picker.
package listing

import (
	"encoding/json"

	"github.com/ternaustralia/tern-uppy/sdk/companion"
	"github.com/ternaustralia/tern-uppy/sdk/utils"
)

var emptyCustom = json.RawMessage(`{}`)

// AdaptJSON parses an upstream body and adapts it.
func AdaptJSON(raw []byte) (*companion.Listing, error) {
	p, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return Adapt(p), nil
}

// Adapt maps a payload to a listing, keeping upstream order. WebODM has no
// paging and no user name, so those fields are always null.
func Adapt(p Payload) *companion.Listing {
	out := &companion.Listing{Items: []companion.Item{}}

	switch v := p.(type) {
	case ContainerList:
		for _, c := range v {
			out.Items = append(out.Items, folderItem(c))
		}
	case TaskAssets:
		for _, asset := range v.AvailableAssets {
			out.Items = append(out.Items, fileItem(v.Task, asset))
		}
	}
	return out
}

func folderItem(c Container) companion.Item {
	item := companion.Item{
		IsFolder: true,
		Icon:     companion.IconFolder,
		Custom:   emptyCustom,
	}

	switch c := c.(type) {
	case Project:
		item.Name = displayName(c.Name, c.Description)
		item.ID = c.ID.Raw()
		item.RequestPath = utils.EncodeURIComponent(ProjectPath(c))
		item.ModifiedDate = c.CreatedAt
	case Task:
		item.Name = displayName(c.Name, c.Description)
		item.ID = c.ID.Raw()
		item.RequestPath = utils.EncodeURIComponent(TaskPath(c))
		item.ModifiedDate = c.CreatedAt
	}
	return item
}

func fileItem(t Task, asset string) companion.Item {
	name := asset
	mimeType := utils.GuessMimeType(asset)
	id, _ := json.Marshal(asset)

	// WebODM does not report asset sizes.
	return companion.Item{
		IsFolder:    false,
		Icon:        companion.IconFile,
		Name:        &name,
		MimeType:    &mimeType,
		ID:          id,
		RequestPath: utils.EncodeURIComponent(AssetPath(t, asset)),
	}
}

func displayName(name, description string) *string {
	switch {
	case name != "":
		return &name
	case description != "":
		return &description
	}
	return nil
}
