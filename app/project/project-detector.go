package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ProjectInfo stores information about a detected project.
type ProjectInfo struct {
	RootPath string            // Absolute path to the directory holding package.json
	Name     string            // package.json "name", or the directory name
	Version  string            // package.json "version"
	Paths    map[string]string // package.json "paths" block (scripts, styles, lessPath, jsPath, htlPath)
}

// packageJSON is the subset of package.json the generator reads.
type packageJSON struct {
	Name    string            `json:"name"`
	Version string            `json:"version"`
	Paths   map[string]string `json:"paths"`
}

// DetectProject walks up from startPath to the nearest directory containing a
// package.json and reads it. The boolean is false when no package.json exists
// between startPath and the filesystem root.
func DetectProject(startPath string) (ProjectInfo, bool, error) {
	currentPath, err := filepath.Abs(startPath)
	if err != nil {
		return ProjectInfo{}, false, fmt.Errorf("resolving %s: %w", startPath, err)
	}

	for {
		info, found, err := readPackageJSON(currentPath)
		if err != nil {
			return ProjectInfo{}, false, err
		}
		if found {
			return info, true, nil
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			return ProjectInfo{}, false, nil
		}
		currentPath = parentPath
	}
}

// readPackageJSON parses dir/package.json. A missing file is not an error,
// an unparseable one is.
func readPackageJSON(dir string) (ProjectInfo, bool, error) {
	pkgPath := filepath.Join(dir, "package.json")
	data, err := os.ReadFile(pkgPath)
	if errors.Is(err, fs.ErrNotExist) {
		return ProjectInfo{}, false, nil
	}
	if err != nil {
		return ProjectInfo{}, false, fmt.Errorf("reading %s: %w", pkgPath, err)
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return ProjectInfo{}, false, fmt.Errorf("parsing %s: %w", pkgPath, err)
	}

	info := ProjectInfo{
		RootPath: dir,
		Name:     pkg.Name,
		Version:  pkg.Version,
		Paths:    pkg.Paths,
	}
	// Default project name to the directory name
	if info.Name == "" {
		info.Name = filepath.Base(dir)
	}
	if info.Paths == nil {
		info.Paths = map[string]string{}
	}
	return info, true, nil
}
