package input

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestResolve_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "initcode.txt")
	content := "0x6080604064736f6c634300081d00330011\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, src, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if src != SourceFile {
		t.Errorf("source = %v, want %v", src, SourceFile)
	}
	if got != content {
		t.Errorf("Resolve() = %q, want %q", got, content)
	}
}

func TestResolve_Literal(t *testing.T) {
	literal := "0x6080604064736f6c634300081d00330011"

	got, src, err := Resolve(literal)
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if src != SourceLiteral {
		t.Errorf("source = %v, want %v", src, SourceLiteral)
	}
	if got != literal {
		t.Errorf("Resolve() = %q, want %q", got, literal)
	}
}

func TestResolve_DirectoryIsLiteral(t *testing.T) {
	dir := t.TempDir()

	got, src, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if src != SourceLiteral || got != dir {
		t.Errorf("Resolve(dir) = %q, %v; want %q, literal", got, src, dir)
	}
}

func TestResolve_LongLiteral(t *testing.T) {
	// Longer than any filesystem name limit; stat fails and the value is
	// used as is.
	literal := "0x" + strings.Repeat("60", 4096)

	got, src, err := Resolve(literal)
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if src != SourceLiteral || got != literal {
		t.Errorf("long literal was not returned unchanged")
	}
}

func TestResolve_UnreadableFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root can read any file")
	}

	path := filepath.Join(t.TempDir(), "initcode.txt")
	if err := os.WriteFile(path, []byte("6080"), 0000); err != nil {
		t.Fatal(err)
	}

	_, src, err := Resolve(path)
	if err == nil {
		t.Fatal("expected error for unreadable file, got nil")
	}
	if src != SourceFile {
		t.Errorf("source = %v, want %v", src, SourceFile)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not mention the path", err)
	}
}

func TestSource_String(t *testing.T) {
	if SourceFile.String() != "file" || SourceLiteral.String() != "literal" {
		t.Errorf("unexpected names: %q, %q", SourceFile, SourceLiteral)
	}
}
