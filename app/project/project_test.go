package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Blainegunn/generator-aem-component/internal/config"
)

func TestDetectProjectWalksUp(t *testing.T) {
	root := t.TempDir()
	pkg := `{"name":"site","version":"1.2.0","paths":{"scripts":"ui/app.js","styles":"ui/app.less"}}`
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte(pkg), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "ui", "apps", "components")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	info, found, err := DetectProject(nested)
	if err != nil || !found {
		t.Fatalf("DetectProject: found=%t err=%v", found, err)
	}
	if info.RootPath != root {
		t.Errorf("RootPath = %q, want %q", info.RootPath, root)
	}
	if info.Name != "site" || info.Version != "1.2.0" {
		t.Errorf("unexpected info %+v", info)
	}
	if info.Paths["styles"] != "ui/app.less" {
		t.Errorf("Paths = %v", info.Paths)
	}
}

func TestDetectProjectDefaultsName(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}
	info, found, err := DetectProject(root)
	if err != nil || !found {
		t.Fatalf("DetectProject: found=%t err=%v", found, err)
	}
	if info.Name != filepath.Base(root) {
		t.Errorf("Name = %q", info.Name)
	}
	if info.Paths == nil {
		t.Error("Paths should never be nil")
	}
}

func TestDetectProjectInvalidJSON(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte(`{`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := DetectProject(root); err == nil {
		t.Fatal("expected parse error")
	}
}

func fullConfig(root string) config.Config {
	cfg := config.Default()
	cfg.Paths = config.Paths{
		Scripts:  filepath.Join(root, "app.js"),
		Styles:   filepath.Join(root, "app.less"),
		LessPath: filepath.Join(root, "less"),
		JSPath:   filepath.Join(root, "js"),
		HTLPath:  filepath.Join(root, "htl"),
	}
	return cfg
}

func TestVerifyRoots(t *testing.T) {
	root := t.TempDir()
	cfg := fullConfig(root)

	var pe *PreconditionError
	if err := VerifyRoots(cfg); !errors.As(err, &pe) || pe.Path != cfg.Paths.Scripts {
		t.Fatalf("expected precondition error naming scripts path, got %v", err)
	}

	if err := os.WriteFile(cfg.Paths.Scripts, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := VerifyRoots(cfg); !errors.As(err, &pe) || pe.Path != cfg.Paths.Styles {
		t.Fatalf("expected precondition error naming styles path, got %v", err)
	}
	if !strings.Contains(pe.Error(), "Could not find "+cfg.Paths.Styles) {
		t.Errorf("message should name the path: %q", pe.Error())
	}

	if err := os.WriteFile(cfg.Paths.Styles, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := VerifyRoots(cfg); err != nil {
		t.Fatalf("expected roots to verify, got %v", err)
	}
}

func TestVerifyRootsMissingConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.Scripts = "x"
	err := VerifyRoots(cfg)
	var pe *PreconditionError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PreconditionError, got %v", err)
	}
	if !strings.Contains(pe.Error(), "styles, lessPath, jsPath, htlPath") {
		t.Errorf("message should list missing keys: %q", pe.Error())
	}
}

func TestCheckVersion(t *testing.T) {
	testCases := []struct {
		name    string
		minimum string
		current string
		wantErr bool
	}{
		{"No minimum", "", "1.0.0", false},
		{"Newer", "1.2.0", "1.3.0", false},
		{"Equal with v prefix", "v1.2.0", "v1.2.0", false},
		{"Older", "2.0.0", "1.9.9", true},
		{"Dev build", "2.0.0", "dev", false},
		{"Invalid minimum", "two", "1.0.0", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckVersion(tc.minimum, tc.current)
			if (err != nil) != tc.wantErr {
				t.Errorf("CheckVersion(%q, %q) = %v, wantErr %t", tc.minimum, tc.current, err, tc.wantErr)
			}
		})
	}
}
