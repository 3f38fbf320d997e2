package bhttpd_test

import (
	"testing"

	"github.com/advdv/bhttpd"
	"github.com/stretchr/testify/assert"
)

func TestDetectContentType(t *testing.T) {
	for path, expect := range map[string]string{
		"x.ttf":           "application/font-truetype",
		"x.woff":          "application/font-woff",
		"x.otf":           "application/font-opentype",
		"x.svg":           "image/svg+xml",
		"/a/index.html":   "text/html",
		"x.png":           "image/png",
		"x.jpg":           "image/jpeg",
		"x.jpeg":          "image/jpeg",
		"x.css":           "text/css",
		"/static/app.js":  "application/javascript",
		"x.json":          "application/json",
		"x.unknownext":    "application/octet-stream",
		"x.JSON":          "application/octet-stream",
		"noext":           "application/octet-stream",
		"/dir.json/file":  "application/octet-stream",
		"archive.tar.css": "text/css",
		"":                "application/octet-stream",
	} {
		assert.Equal(t, expect, bhttpd.DetectContentType(path), path)
	}
}
