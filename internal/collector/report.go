package collector

import (
	"errors"
	"time"

	"media-collector/internal/mediatypes"
)

// ErrNoValidFiles is the outcome of an invocation that found nothing.
// The message is part of the host contract.
var ErrNoValidFiles = errors.New("No valid files") //nolint:staticcheck // capitalized on purpose, shown verbatim to users

// SkipReason classifies why a path contributed nothing.
type SkipReason string

const (
	// ReasonCanonicalize means the path or a link along it could not be resolved.
	ReasonCanonicalize SkipReason = "canonicalize"
	// ReasonStat means the resolved path could not be inspected.
	ReasonStat SkipReason = "stat"
	// ReasonReadDir means a directory could not be (fully) listed.
	ReasonReadDir SkipReason = "readdir"
	// ReasonUnsupported means the path is neither a directory nor a regular file.
	ReasonUnsupported SkipReason = "unsupported"
)

// SkipReasons lists every SkipReason.
var SkipReasons = []SkipReason{ReasonCanonicalize, ReasonStat, ReasonReadDir, ReasonUnsupported}

// SkippedPath is one path that was dropped during traversal.
type SkippedPath struct {
	Path   string     `json:"path"`
	Reason SkipReason `json:"reason"`
	Error  string     `json:"error,omitempty"`
}

// Report describes one invocation. Files is the same sequence CollectAll
// returns.
type Report struct {
	InvocationID       string                      `json:"invocationId"`
	Roots              int                         `json:"roots"`
	Files              []string                    `json:"files"`
	FilesByType        map[mediatypes.FileType]int `json:"filesByType"`
	Skipped            []SkippedPath               `json:"skipped,omitempty"`
	Duplicates         int64                       `json:"duplicates"`
	DirectoriesVisited int64                       `json:"directoriesVisited"`
	FilesIgnored       int64                       `json:"filesIgnored"`
	IdentitiesClaimed  int                         `json:"identitiesClaimed"`
	Duration           time.Duration               `json:"-"`
	DurationMs         int64                       `json:"durationMs"`
}

// SkippedByReason counts skipped paths per reason.
func (r *Report) SkippedByReason() map[SkipReason]int {
	counts := make(map[SkipReason]int, len(SkipReasons))
	for _, s := range r.Skipped {
		counts[s.Reason]++
	}
	return counts
}

func countByType(files []string) map[mediatypes.FileType]int {
	counts := make(map[mediatypes.FileType]int, 2)
	for _, f := range files {
		counts[mediatypes.GetFileType(mediatypes.Extension(f))]++
	}
	return counts
}
