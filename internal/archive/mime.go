// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package archive

import (
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var imageExtensions = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".svg":  "image/svg+xml",
}

var videoExtensions = map[string]string{
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".ogg":  "video/ogg",
	".mov":  "video/quicktime",
}

var previewBaseNames = map[string]struct{}{
	"preview":   {},
	"thumb":     {},
	"thumbnail": {},
}

var zipExtensions = map[string]struct{}{
	".zip": {},
}

// IsPreviewName reports whether name is a conventional preview entry name
// such as preview.png or Thumbnail.MP4.
func IsPreviewName(name string) bool {
	base := strings.ToLower(path.Base(filepathToSlash(name)))
	ext := path.Ext(base)
	if _, ok := previewBaseNames[strings.TrimSuffix(base, ext)]; !ok {
		return false
	}
	return IsMediaExtension(ext)
}

// IsMediaExtension reports whether ext (with the dot) is an accepted image or
// video extension.
func IsMediaExtension(ext string) bool {
	ext = strings.ToLower(ext)
	_, image := imageExtensions[ext]
	_, video := videoExtensions[ext]
	return image || video
}

// DetectMIME infers the MIME type of a preview from its content, falling back
// to the file extension when the content is not recognized as media.
func DetectMIME(name string, data []byte) string {
	detected := mimetype.Detect(data).String()
	if i := strings.IndexByte(detected, ';'); i >= 0 {
		detected = detected[:i]
	}
	if strings.HasPrefix(detected, "image/") || strings.HasPrefix(detected, "video/") {
		return detected
	}

	ext := strings.ToLower(path.Ext(name))
	if m, ok := imageExtensions[ext]; ok {
		return m
	}
	if m, ok := videoExtensions[ext]; ok {
		return m
	}
	return "application/octet-stream"
}

// IsArchive reports whether a selected file looks like a zip package, by its
// extension or its content.
func IsArchive(name string, data []byte) bool {
	if _, ok := zipExtensions[strings.ToLower(path.Ext(name))]; ok {
		return true
	}
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if m.Is("application/zip") {
			return true
		}
	}
	return false
}

func filepathToSlash(name string) string {
	return strings.ReplaceAll(name, `\`, "/")
}
