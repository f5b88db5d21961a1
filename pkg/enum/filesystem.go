// Package enum enumerates scan targets for the CLI host.
package enum

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
)

// Config controls filesystem enumeration.
type Config struct {
	// Root is the file or directory to enumerate.
	Root string

	// MaxFileSize skips files larger than this many bytes (0 = no limit).
	MaxFileSize int64

	// IncludeHidden includes dot-files and dot-directories.
	IncludeHidden bool

	// FollowSymlinks descends into symlinked files.
	FollowSymlinks bool
}

// Callback receives one enumerated file. Callbacks may be invoked
// concurrently from multiple reader goroutines.
type Callback func(path string, content []byte) error

// FilesystemEnumerator walks a directory tree and yields file contents.
type FilesystemEnumerator struct {
	config Config
}

// NewFilesystem creates a filesystem enumerator.
func NewFilesystem(config Config) *FilesystemEnumerator {
	return &FilesystemEnumerator{config: config}
}

// Enumerate walks the tree under Root and invokes callback per file.
// Phase 1 walks and collects eligible paths sequentially; phase 2 reads
// the files in parallel. A .gitignore at Root is honored when present.
func (e *FilesystemEnumerator) Enumerate(ctx context.Context, callback Callback) error {
	info, err := os.Stat(e.config.Root)
	if err != nil {
		return fmt.Errorf("stat %s: %w", e.config.Root, err)
	}
	if !info.IsDir() {
		content, err := os.ReadFile(e.config.Root)
		if err != nil {
			return fmt.Errorf("reading %s: %w", e.config.Root, err)
		}
		return callback(e.config.Root, content)
	}

	var ignore *gitignore.GitIgnore
	gitignorePath := filepath.Join(e.config.Root, ".gitignore")
	if _, err := os.Stat(gitignorePath); err == nil {
		ignore, _ = gitignore.CompileIgnoreFile(gitignorePath)
	}

	var files []string
	err = filepath.Walk(e.config.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if info.IsDir() {
			if !e.config.IncludeHidden && isHidden(info.Name()) && path != e.config.Root {
				return filepath.SkipDir
			}
			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 && !e.config.FollowSymlinks {
			return nil
		}
		if !e.config.IncludeHidden && isHidden(info.Name()) {
			return nil
		}
		if e.config.MaxFileSize > 0 && info.Size() > e.config.MaxFileSize {
			return nil
		}
		if ignore != nil {
			relPath, err := filepath.Rel(e.config.Root, path)
			if err != nil {
				return err
			}
			if ignore.MatchesPath(relPath) {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return err
	}

	numReaders := runtime.NumCPU()
	if numReaders < 1 {
		numReaders = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	pathsCh := make(chan string, numReaders*2)

	g.Go(func() error {
		defer close(pathsCh)
		for _, f := range files {
			select {
			case pathsCh <- f:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < numReaders; i++ {
		g.Go(func() error {
			for f := range pathsCh {
				content, err := os.ReadFile(f)
				if err != nil {
					return fmt.Errorf("reading %s: %w", f, err)
				}
				if err := callback(f, content); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
