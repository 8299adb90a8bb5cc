// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package listing

// Request paths are relative to {base}/api/projects/. Folder paths end in
// "/" so they can be passed straight back as the next list directory.

func ProjectPath(p Project) string {
	return p.ID.String() + "/tasks/"
}

func TaskPath(t Task) string {
	return t.Project.String() + "/tasks/" + t.ID.String() + "/"
}

func AssetPath(t Task, asset string) string {
	return t.Project.String() + "/tasks/" + t.ID.String() + "/download/" + asset
}
