package raster

import (
	"bytes"
	"path/filepath"
	"strings"
)

var (
	jpegMagic = []byte{0xff, 0xd8, 0xff}
	pngMagic  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
)

// SniffImage reports whether the bytes start with a JPEG or PNG signature.
func SniffImage(b []byte) bool {
	return bytes.HasPrefix(b, jpegMagic) || bytes.HasPrefix(b, pngMagic)
}

// HasImageExt reports whether the filename carries a .jpg or .png extension.
// Uploads are validated by extension; URL fetches by magic bytes.
func HasImageExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".png":
		return true
	}
	return false
}
