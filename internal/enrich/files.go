package enrich

import (
	"context"
	"os"
)

// FileStatus is the answer to a lazy path-existence check for one entry of
// a files clip.
type FileStatus struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
	IsDir  bool   `json:"isDir"`
}

// CheckFile stats one path. Results are memoized per path for the lifetime
// of the enricher; a vanished file keeps reporting its cached state until
// the process restarts, which matches how long a displayed item lives.
func (e *Enricher) CheckFile(ctx context.Context, path string) FileStatus {
	v := e.memo.do(keyFrom("file", path), func() any {
		info, err := os.Stat(path)
		if err != nil {
			return FileStatus{Path: path}
		}
		return FileStatus{Path: path, Exists: true, IsDir: info.IsDir()}
	})
	return v.(FileStatus)
}

// CheckFiles resolves a whole files clip. Order of the results matches the
// input; each path is still individually memoized.
func (e *Enricher) CheckFiles(ctx context.Context, paths []string) []FileStatus {
	out := make([]FileStatus, 0, len(paths))
	for _, p := range paths {
		out = append(out, e.CheckFile(ctx, p))
	}
	return out
}
