package source

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// FileSource reads a CSV export from the local filesystem. The pattern
// is a doublestar glob; when it matches several files the most recently
// modified one is used, so pointing it at a download directory picks up
// each new export.
type FileSource struct {
	pattern string
}

// NewFileSource creates a source for the given glob pattern. The pattern
// must match at least one file at creation time.
func NewFileSource(pattern string) (*FileSource, error) {
	matches, err := expandGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match %q", pattern)
	}
	return &FileSource{pattern: pattern}, nil
}

// Fetch reads the newest matching file. The context is accepted for
// interface symmetry with the sheet fetcher; local reads don't block.
func (s *FileSource) Fetch(ctx context.Context) (string, error) {
	path, err := s.newest()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Watch blocks until the context is cancelled, invoking reload whenever
// a matching file is written or created. The directories containing the
// current matches are watched, so a fresh export dropped next to an old
// one is picked up too.
func (s *FileSource) Watch(ctx context.Context, reload func()) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	matches, err := expandGlob(s.pattern)
	if err != nil {
		return err
	}
	dirs := make(map[string]struct{})
	for _, m := range matches {
		abs, _ := filepath.Abs(m)
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			log.Printf("warning: cannot watch %s: %v", dir, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !s.matchesPattern(ev.Name) {
				continue
			}
			reload()
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

// matchesPattern reports whether an event path belongs to the source's
// glob. Event paths are absolute while the pattern may be relative, so
// fall back to matching the final pattern segment against the basename.
func (s *FileSource) matchesPattern(name string) bool {
	if ok, _ := doublestar.PathMatch(filepath.ToSlash(s.pattern), filepath.ToSlash(name)); ok {
		return true
	}
	ok, _ := doublestar.Match(filepath.Base(filepath.FromSlash(s.pattern)), filepath.Base(name))
	return ok
}

// newest returns the most recently modified matching file.
func (s *FileSource) newest() (string, error) {
	matches, err := expandGlob(s.pattern)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no files match %q", s.pattern)
	}

	best := matches[0]
	var bestMod int64
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); mod >= bestMod {
			best, bestMod = m, mod
		}
	}
	return best, nil
}

// expandGlob resolves a glob pattern to matching file paths.
// Supports recursive patterns like exports/**/*.csv via doublestar.
func expandGlob(pattern string) ([]string, error) {
	return doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
}
