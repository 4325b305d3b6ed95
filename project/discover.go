package project

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dhamidi/jex/java"
	"github.com/dhamidi/jex/jsni"
)

// DiscoverSources collects the paths of all Java sources under the
// given roots. A root may also be a single file. Hidden directories
// and common build output directories are skipped.
func DiscoverSources(roots []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if strings.HasSuffix(root, ".java") {
				add(root)
			}
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(d.Name(), ".java") {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

func skipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	switch name {
	case "target", "build", "out", "node_modules":
		return true
	}
	return false
}

// LoadUnits scans every discovered source into a unit. The scan reads
// each file once; the unit re-reads it on demand when extraction needs
// the raw text. A file that cannot be read is kept as an errored unit
// so the caller can report it.
func LoadUnits(roots []string) ([]*jsni.Unit, error) {
	paths, err := DiscoverSources(roots)
	if err != nil {
		return nil, err
	}
	units := make([]*jsni.Unit, 0, len(paths))
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			units = append(units, &jsni.Unit{
				Path:   path,
				Status: jsni.StatusError,
				File:   &java.File{Path: path},
			})
			continue
		}
		path := path
		units = append(units, jsni.NewUnit(path, java.ParseFile(path, src), func() (string, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return "", err
			}
			return string(data), nil
		}))
	}
	return units, nil
}
