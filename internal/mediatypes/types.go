package mediatypes

import (
	"path/filepath"
	"strings"
)

// FileType represents the category of a collected media file.
type FileType string

const (
	// FileTypeAudio represents an audio file.
	FileTypeAudio FileType = "audio"
	// FileTypeVideo represents a video file.
	FileTypeVideo FileType = "video"
	// FileTypeOther represents a file the collector does not emit.
	FileTypeOther FileType = "other"
)

// AudioExtensions maps file extensions to whether they are collected audio formats.
var AudioExtensions = map[string]bool{
	".mp3": true,
}

// VideoExtensions maps file extensions to whether they are collected video formats.
var VideoExtensions = map[string]bool{
	".mp4": true,
}

// Extension returns the lowercase extension of name including the leading dot.
// A name whose only dot is the leading one (".mp3") has no extension.
func Extension(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return strings.ToLower(ext)
}

// GetFileType returns the FileType for a given file extension.
// The extension should be lowercase and include the leading dot (e.g., ".mp3").
// Returns FileTypeOther if the extension is not recognized.
func GetFileType(ext string) FileType {
	if AudioExtensions[ext] {
		return FileTypeAudio
	}
	if VideoExtensions[ext] {
		return FileTypeVideo
	}
	return FileTypeOther
}

// IsTargetFile reports whether name carries one of the collected extensions.
func IsTargetFile(name string) bool {
	return GetFileType(Extension(name)) != FileTypeOther
}
