package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rook-computer/postermaker/internal/render"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		profile  string
		want     *Config
		wantFile string
	}{
		{
			name: "no config file",
			want: Default(),
		},
		{
			name: "config.yml",
			files: map[string]string{
				"config.yml": "listen: \":9000\"\nfonts:\n  bold: /fonts/bold.ttf\nfooterQR: true\ndefaultTheme: sunset\n",
			},
			want: &Config{
				Listen:       ":9000",
				Fonts:        render.FontConfig{BoldPath: "/fonts/bold.ttf"},
				FooterQR:     true,
				DefaultTheme: "sunset",
			},
			wantFile: "config.yml",
		},
		{
			name: "profile wins",
			files: map[string]string{
				"config.yml":       "footer: base\n",
				"config-work.yaml": "footer: work\n",
			},
			profile:  "work",
			want:     &Config{Listen: DefaultListenAddr, Footer: "work", DefaultTheme: "modern"},
			wantFile: "config-work.yaml",
		},
		{
			name:     "unknown default theme",
			files:    map[string]string{"config.yaml": "defaultTheme: neon\n"},
			want:     Default(),
			wantFile: "config.yaml",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("XDG_CONFIG_HOME", home)
			for name, content := range tt.files {
				writeFile(t, filepath.Join(home, "postermaker", name), content)
			}
			got, path, err := Load(tt.profile)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Error(diff)
			}
			wantPath := ""
			if tt.wantFile != "" {
				wantPath = filepath.Join(home, "postermaker", tt.wantFile)
			}
			if path != wantPath {
				t.Errorf("path = %q, want %q", path, wantPath)
			}
		})
	}
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	writeFile(t, path, "listen: [\n")
	if _, err := LoadFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvListenAddr, "127.0.0.1:7000")
	t.Setenv(EnvDevMode, "true")
	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != "127.0.0.1:7000" || !cfg.Dev {
		t.Errorf("env not applied: %+v", cfg)
	}

	t.Setenv(EnvDevMode, "sometimes")
	if err := Default().ApplyEnv(); err == nil {
		t.Error("expected error for invalid bool")
	}
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	writeFile(t, path, "footer: one\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes := make(chan *Config, 8)
	onChange := func(c *Config) {
		select {
		case changes <- c:
		default:
		}
	}
	if err := Watch(ctx, path, onChange, nil); err != nil {
		t.Fatal(err)
	}
	writeFile(t, path, "footer: two\n")

	timeout := time.After(5 * time.Second)
	for {
		select {
		case c := <-changes:
			if c.Footer == "two" {
				return
			}
		case <-timeout:
			t.Fatal("no reload observed")
		}
	}
}
