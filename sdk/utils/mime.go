// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"path"
	"strings"
)

const DefaultMimeType = "application/octet-stream"

// mimeTypes is a fixed table so guesses do not depend on the host's
// mime.types files. It covers WebODM outputs plus common image, audio,
// video, office and archive types; rarer extensions (point clouds such as
// .las/.laz, .ply, shapefile parts) fall back to DefaultMimeType.
// Extensions are lower case, with the leading dot.
var mimeTypes = map[string]string{
	".7z":      "application/x-7z-compressed",
	".avi":     "video/x-msvideo",
	".bmp":     "image/bmp",
	".bz2":     "application/x-bzip2",
	".css":     "text/css",
	".csv":     "text/csv",
	".doc":     "application/msword",
	".docx":    "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".dxf":     "image/vnd.dxf",
	".epub":    "application/epub+zip",
	".geojson": "application/geo+json",
	".gif":     "image/gif",
	".glb":     "model/gltf-binary",
	".gltf":    "model/gltf+json",
	".gpx":     "application/gpx+xml",
	".gz":      "application/gzip",
	".heic":    "image/heic",
	".htm":     "text/html",
	".html":    "text/html",
	".ico":     "image/vnd.microsoft.icon",
	".j2k":     "image/jp2",
	".jp2":     "image/jp2",
	".jpeg":    "image/jpeg",
	".jpg":     "image/jpeg",
	".js":      "application/javascript",
	".json":    "application/json",
	".kml":     "application/vnd.google-earth.kml+xml",
	".kmz":     "application/vnd.google-earth.kmz",
	".m4a":     "audio/mp4",
	".md":      "text/markdown",
	".mov":     "video/quicktime",
	".mp3":     "audio/mpeg",
	".mp4":     "video/mp4",
	".mpeg":    "video/mpeg",
	".mpg":     "video/mpeg",
	".mtl":     "model/mtl",
	".obj":     "model/obj",
	".odp":     "application/vnd.oasis.opendocument.presentation",
	".ods":     "application/vnd.oasis.opendocument.spreadsheet",
	".odt":     "application/vnd.oasis.opendocument.text",
	".ogg":     "audio/ogg",
	".pdf":     "application/pdf",
	".png":     "image/png",
	".ppt":     "application/vnd.ms-powerpoint",
	".pptx":    "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".rtf":     "application/rtf",
	".stl":     "model/stl",
	".svg":     "image/svg+xml",
	".tar":     "application/x-tar",
	".tif":     "image/tiff",
	".tiff":    "image/tiff",
	".tsv":     "text/tab-separated-values",
	".txt":     "text/plain",
	".wasm":    "application/wasm",
	".wav":     "audio/wav",
	".webm":    "video/webm",
	".webp":    "image/webp",
	".xls":     "application/vnd.ms-excel",
	".xlsx":    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".xml":     "application/xml",
	".yaml":    "text/yaml",
	".yml":     "text/yaml",
	".zip":     "application/zip",
}

// GuessMimeType maps the extension of name (which may be a full path) to a
// MIME type, falling back to DefaultMimeType.
func GuessMimeType(name string) string {
	ext := strings.ToLower(path.Ext(path.Base(name)))
	if mt, ok := mimeTypes[ext]; ok {
		return mt
	}
	return DefaultMimeType
}
