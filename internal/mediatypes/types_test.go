package mediatypes

import (
	"testing"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase", input: "song.mp3", want: ".mp3"},
		{name: "uppercase", input: "song.MP3", want: ".mp3"},
		{name: "mixed case", input: "clip.Mp4", want: ".mp4"},
		{name: "full path", input: "/music/album/track.mp3", want: ".mp3"},
		{name: "multiple dots", input: "archive.tar.gz", want: ".gz"},
		{name: "no extension", input: "README", want: ""},
		{name: "dot file only", input: ".mp3", want: ""},
		{name: "dot file in directory", input: "/music/.mp4", want: ""},
		{name: "dot file with extension", input: ".hidden.mp3", want: ".mp3"},
		{name: "trailing dot", input: "song.", want: "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extension(tt.input)
			if got != tt.want {
				t.Errorf("Extension(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGetFileType(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		want FileType
	}{
		{name: "MP3 audio", ext: ".mp3", want: FileTypeAudio},
		{name: "MP4 video", ext: ".mp4", want: FileTypeVideo},
		{name: "WAV is not collected", ext: ".wav", want: FileTypeOther},
		{name: "MKV is not collected", ext: ".mkv", want: FileTypeOther},
		{name: "Uppercase is not normalized here", ext: ".MP3", want: FileTypeOther},
		{name: "Empty extension", ext: "", want: FileTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetFileType(tt.ext)
			if got != tt.want {
				t.Errorf("GetFileType(%q) = %v, want %v", tt.ext, got, tt.want)
			}
		})
	}
}

func TestIsTargetFile(t *testing.T) {
	tests := []struct {
		name string
		file string
		want bool
	}{
		{name: "song.MP3", file: "song.MP3", want: true},
		{name: "clip.Mp4", file: "clip.Mp4", want: true},
		{name: "clip.mp4", file: "clip.mp4", want: true},
		{name: "notes.txt", file: "notes.txt", want: false},
		{name: "photo.jpg", file: "photo.jpg", want: false},
		{name: "c.wav", file: "c.wav", want: false},
		{name: "mp3 without dot", file: "mp3", want: false},
		{name: "bare dot file", file: ".mp3", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsTargetFile(tt.file)
			if got != tt.want {
				t.Errorf("IsTargetFile(%q) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}

func TestFileTypeConstants(t *testing.T) {
	if FileTypeAudio != "audio" {
		t.Errorf("FileTypeAudio = %v, want 'audio'", FileTypeAudio)
	}
	if FileTypeVideo != "video" {
		t.Errorf("FileTypeVideo = %v, want 'video'", FileTypeVideo)
	}
	if FileTypeOther != "other" {
		t.Errorf("FileTypeOther = %v, want 'other'", FileTypeOther)
	}
}
