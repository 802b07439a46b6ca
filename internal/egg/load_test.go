package egg

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "minecraft/egg-paper.json", `{
    "_comment": "DO NOT EDIT",
    "meta": {"version": "PTDL_v2"},
    "name": "Paper",
    "author": "parker@example.com",
    "startup": "java -jar server.jar"
}
`)

	def, err := Load(File{Path: path, RelPath: "minecraft/egg-paper.json", Slug: "minecraft"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if def.Name != "Paper" {
		t.Errorf("Name = %q, want Paper", def.Name)
	}
	if def.Author != "parker@example.com" {
		t.Errorf("Author = %q, want parker@example.com", def.Author)
	}
	if def.File.Nest() != NestMinecraft {
		t.Errorf("Nest = %q, want %q", def.File.Nest(), NestMinecraft)
	}
	if !strings.Contains(string(def.Raw), `"startup": "java -jar server.jar"`) {
		t.Errorf("Raw should keep the original content, got %s", def.Raw)
	}
	if strings.HasSuffix(string(def.Raw), "\n") {
		t.Error("Raw should be trimmed")
	}
}

func TestParseNameFallback(t *testing.T) {
	f := File{Path: "/repo/rust/egg-rust-staging.json", RelPath: "rust/egg-rust-staging.json", Slug: "rust"}

	for _, content := range []string{`{}`, `{"name": ""}`, `{"name": "   "}`} {
		def, err := Parse(f, []byte(content))
		if err != nil {
			t.Fatalf("Parse(%s) failed: %v", content, err)
		}
		if def.Name != "egg-rust-staging" {
			t.Errorf("Parse(%s) name = %q, want file stem", content, def.Name)
		}
	}
}

func TestParseByteOrderMark(t *testing.T) {
	f := File{Path: "/repo/rust/egg-rust.json", RelPath: "rust/egg-rust.json", Slug: "rust"}
	def, err := Parse(f, []byte("\xef\xbb\xbf{\"name\":\"Rust\"}"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if def.Name != "Rust" {
		t.Errorf("Name = %q, want Rust", def.Name)
	}
}

func TestParseInvalid(t *testing.T) {
	f := File{Path: "/repo/rust/egg-rust.json", RelPath: "rust/egg-rust.json", Slug: "rust"}

	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"whitespace", "  \n"},
		{"truncated", `{"name": "Rust"`},
		{"array", `[{"name": "Rust"}]`},
		{"string", `"Rust"`},
		{"trailing garbage", `{"name": "Rust"} {}`},
		{"name not a string", `{"name": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(f, []byte(tt.content))
			if err == nil {
				t.Fatal("Expected parse error")
			}
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("Expected LoadError, got %T", err)
			}
			if loadErr.Path != "rust/egg-rust.json" {
				t.Errorf("LoadError.Path = %q, want relative path", loadErr.Path)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(File{Path: "/nonexistent/egg-x.json", RelPath: "x/egg-x.json", Slug: "x"})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped ErrNotExist, got %v", err)
	}
}
