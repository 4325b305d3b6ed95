package project

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("jex.project")

// PomFile is the Maven project descriptor consulted when no jex
// configuration exists.
const PomFile = "pom.xml"

// mavenProject mirrors the parts of a POM that locate sources.
type mavenProject struct {
	XMLName xml.Name   `xml:"project"`
	Modules []string   `xml:"modules>module"`
	Build   mavenBuild `xml:"build"`
}

type mavenBuild struct {
	SourceDirectory string `xml:"sourceDirectory"`
}

// MavenRoots reads the POM in dir and returns the source roots it
// declares, following <modules> into nested projects. A project
// without an explicit <sourceDirectory> contributes the conventional
// src/main/java. Roots missing on disk are dropped, as are modules
// without their own POM.
func MavenRoots(dir string) ([]string, error) {
	seen := make(map[string]bool)
	return mavenRoots(dir, seen, true)
}

func mavenRoots(dir string, seen map[string]bool, root bool) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if seen[abs] {
		return nil, nil
	}
	seen[abs] = true

	pom := filepath.Join(dir, PomFile)
	data, err := os.ReadFile(pom)
	if err != nil {
		if !root && os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", pom, err)
	}
	var proj mavenProject
	if err := xml.Unmarshal(data, &proj); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", pom, err)
	}

	var roots []string
	source := proj.Build.SourceDirectory
	if source == "" {
		source = filepath.Join("src", "main", "java")
	}
	source = filepath.Join(dir, filepath.FromSlash(source))
	if info, err := os.Stat(source); err == nil && info.IsDir() {
		roots = append(roots, source)
	}

	for _, module := range proj.Modules {
		sub, err := mavenRoots(filepath.Join(dir, filepath.FromSlash(module)), seen, false)
		if err != nil {
			return nil, err
		}
		roots = append(roots, sub...)
	}
	return roots, nil
}

// mavenConfig derives run settings from a Maven project in dir. Without
// a POM, or when the POM yields no source roots, the defaults apply.
func mavenConfig(dir string) Config {
	cfg := DefaultConfig()
	if _, err := os.Stat(filepath.Join(dir, PomFile)); err != nil {
		return cfg
	}
	roots, err := MavenRoots(dir)
	if err != nil {
		log.Warningf("%s", err.Error())
		return cfg
	}
	if len(roots) > 0 {
		cfg.Roots = roots
	}
	return cfg
}
