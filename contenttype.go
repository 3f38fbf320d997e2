package bhttpd

import (
	"path"
	"strings"
)

// DefaultContentType is returned for unknown or absent extensions.
const DefaultContentType = "application/octet-stream"

var contentTypes = map[string]string{
	"ttf":  "application/font-truetype",
	"woff": "application/font-woff",
	"otf":  "application/font-opentype",
	"svg":  "image/svg+xml",
	"html": "text/html",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"css":  "text/css",
	"js":   "application/javascript",
	"json": "application/json",
}

// DetectContentType maps the extension of the last path element to a MIME type. Matching is
// case-sensitive.
func DetectContentType(p string) string {
	ext := strings.TrimPrefix(path.Ext(p), ".")
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}

	return DefaultContentType
}
