package egg

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tacogips/egg-import/internal/debug"
)

// FilePattern is the glob every egg definition file name matches.
const FilePattern = "egg-*.json"

// ToolsDir is skipped during discovery; it holds tooling, not eggs.
const ToolsDir = "tools"

// File is an egg definition file found in the repository.
type File struct {
	// Path is the absolute path of the file.
	Path string
	// RelPath is the slash-separated path relative to the repository root.
	RelPath string
	// Slug is the game slug: the first component of RelPath.
	Slug string
}

// Nest returns the nest the file resolves to.
func (f File) Nest() string {
	return ResolveNest(f.Slug)
}

// Discover walks root and returns every egg definition file, sorted by
// relative path. The tools directory and hidden directories are skipped.
func Discover(root string) ([]File, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repository root %s: %w", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("repository root %s: %w", absRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("repository root %s is not a directory", absRoot)
	}

	debug.DebugSection("Discover eggs")
	debug.DebugValue("root", absRoot)

	var files []File
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == absRoot {
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if filepath.Dir(path) == absRoot && d.Name() == ToolsDir {
				debug.Debug("Skipping tools directory: %s", path)
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if ok, _ := filepath.Match(FilePattern, d.Name()); !ok {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}
		rel = filepath.ToSlash(rel)

		files = append(files, File{
			Path:    path,
			RelPath: rel,
			Slug:    strings.SplitN(rel, "/", 2)[0],
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", absRoot, err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelPath < files[j].RelPath
	})

	debug.Debug("Found %d egg file(s)", len(files))
	return files, nil
}
