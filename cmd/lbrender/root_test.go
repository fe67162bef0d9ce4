package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if !strings.HasPrefix(cmd.Use, "lbrender") {
			t.Errorf("expected use to start with 'lbrender', got %q", cmd.Use)
		}
	})

	t.Run("has filters flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("filters")
		if flag == nil {
			t.Fatal("expected filters flag")
		}
		if flag.Shorthand != "f" {
			t.Errorf("expected shorthand 'f', got %q", flag.Shorthand)
		}
	})

	t.Run("has depth flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("depth")
		if flag == nil {
			t.Fatal("expected depth flag")
		}
		if flag.DefValue != "0" {
			t.Errorf("expected default '0', got %q", flag.DefValue)
		}
	})
}

// TestRunRender_Stdin tests rendering a post body from stdin to stdout.
func TestRunRender_Stdin(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader("# Hi\n**post**"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got, want := out.String(), "<h3>Hi</h3><p><strong>post</strong></p>\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// TestRunRender_Files tests rendering input files into .html siblings.
func TestRunRender_Files(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(first, []byte(">quoted"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("*i*"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := NewRootCmd()
	cmd.SetArgs([]string{first, second})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got, err := os.ReadFile(first + ".html")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if want := "<blockquote><p>quoted</p></blockquote>"; string(got) != want {
		t.Errorf("a.txt.html = %q, want %q", got, want)
	}

	got, err = os.ReadFile(second + ".html")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if want := "<p><em>i</em></p>"; string(got) != want {
		t.Errorf("b.txt.html = %q, want %q", got, want)
	}
}

// TestRunRender_Filters tests the --filters flag end to end.
func TestRunRender_Filters(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	filters := filepath.Join(dir, "filters.yml")
	src := "filter_rules:\n  - pattern: \"(?i)\\\\btbh\\\\b\"\n    replace_with: desu\n"
	if err := os.WriteFile(filters, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader("nice tbh"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--filters", filters})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got, want := out.String(), "<p>nice desu</p>\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// TestRunRender_MissingFile tests that unreadable inputs surface an error.
func TestRunRender_MissingFile(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.txt")})
	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() should fail on a missing input file")
	}
}
