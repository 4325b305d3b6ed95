package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMavenRootsConvention(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pom.xml"), `<project>
  <modelVersion>4.0.0</modelVersion>
  <artifactId>widget</artifactId>
</project>`)
	if err := os.MkdirAll(filepath.Join(dir, "src", "main", "java"), 0o755); err != nil {
		t.Fatal(err)
	}

	roots, err := MavenRoots(dir)
	if err != nil {
		t.Fatalf("MavenRoots() error = %v", err)
	}
	want := filepath.Join(dir, "src", "main", "java")
	if len(roots) != 1 || roots[0] != want {
		t.Errorf("roots = %v, want [%s]", roots, want)
	}
}

func TestMavenRootsSourceDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pom.xml"), `<project>
  <build>
    <sourceDirectory>app/java</sourceDirectory>
  </build>
</project>`)
	if err := os.MkdirAll(filepath.Join(dir, "app", "java"), 0o755); err != nil {
		t.Fatal(err)
	}

	roots, err := MavenRoots(dir)
	if err != nil {
		t.Fatalf("MavenRoots() error = %v", err)
	}
	want := filepath.Join(dir, "app", "java")
	if len(roots) != 1 || roots[0] != want {
		t.Errorf("roots = %v, want [%s]", roots, want)
	}
}

func TestMavenRootsModules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pom.xml"), `<project>
  <packaging>pom</packaging>
  <modules>
    <module>core</module>
    <module>web</module>
    <module>core</module>
    <module>missing</module>
  </modules>
</project>`)
	for _, m := range []string{"core", "web"} {
		writeFile(t, filepath.Join(dir, m, "pom.xml"), `<project/>`)
		if err := os.MkdirAll(filepath.Join(dir, m, "src", "main", "java"), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	roots, err := MavenRoots(dir)
	if err != nil {
		t.Fatalf("MavenRoots() error = %v", err)
	}
	want := []string{
		filepath.Join(dir, "core", "src", "main", "java"),
		filepath.Join(dir, "web", "src", "main", "java"),
	}
	if len(roots) != len(want) {
		t.Fatalf("roots = %v, want %v", roots, want)
	}
	for i := range want {
		if roots[i] != want[i] {
			t.Errorf("roots[%d] = %s, want %s", i, roots[i], want[i])
		}
	}
}

func TestMavenRootsMissingPom(t *testing.T) {
	if _, err := MavenRoots(t.TempDir()); err == nil {
		t.Error("MavenRoots() without a POM did not fail")
	}
}

func TestMavenRootsInvalidPom(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pom.xml"), `<project><modules>`)
	if _, err := MavenRoots(dir); err == nil {
		t.Error("MavenRoots() accepted truncated XML")
	}
}

func TestLoadConfigMavenFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pom.xml"), `<project/>`)
	if err := os.MkdirAll(filepath.Join(dir, "src", "main", "java"), 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(filepath.Join(dir, "jex.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	want := filepath.Join(dir, "src", "main", "java")
	if len(cfg.Roots) != 1 || cfg.Roots[0] != want {
		t.Errorf("Roots = %v, want [%s]", cfg.Roots, want)
	}
	if cfg.Jobs != 1 {
		t.Errorf("Jobs = %d, want 1", cfg.Jobs)
	}
}

func TestLoadConfigPrefersExplicitFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pom.xml"), `<project/>`)
	writeFile(t, filepath.Join(dir, "jex.yaml"), "roots:\n  - lib\n")

	cfg, err := LoadConfig(filepath.Join(dir, "jex.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if len(cfg.Roots) != 1 || cfg.Roots[0] != "lib" {
		t.Errorf("Roots = %v, want [lib]", cfg.Roots)
	}
}
