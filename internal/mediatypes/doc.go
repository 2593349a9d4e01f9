// Package mediatypes provides shared type definitions and utilities for media file
// handling across the media-collector application.
//
// This package exists as a dependency-free foundation that can be imported by other
// packages without creating import cycles. It contains primitive types, constants,
// and pure utility functions with no external dependencies beyond the standard library.
//
// # File Types
//
// The package defines a FileType enum for categorizing collected files:
//
//	mediatypes.FileTypeAudio // mp3
//	mediatypes.FileTypeVideo // mp4
//	mediatypes.FileTypeOther // anything the collector ignores
//
// # Extension Detection
//
// Extensions are compared case-insensitively. Use IsTargetFile with a file name
// or path; it handles the lower-casing and the dot-file rule:
//
//	mediatypes.IsTargetFile("song.MP3")  // true
//	mediatypes.IsTargetFile("clip.Mp4")  // true
//	mediatypes.IsTargetFile(".mp3")      // false, ".mp3" is a stem, not an extension
//	mediatypes.IsTargetFile("notes.txt") // false
//
// Extension returns the normalized extension ("" when the name has none), and
// GetFileType maps a normalized extension to its category.
package mediatypes
