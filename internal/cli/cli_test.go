package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testManifest = `
[topology]
name = "lab"
identifier = "urn:ogf:network:lab"

[[nodes]]
name = "sw1"
ports = ["p1"]

[[nodes]]
name = "sw2"
ports = ["p1"]

[[links]]
a = "sw1:p1"
b = "sw2:p1"
`

func writeManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lab.toml")
	if err := os.WriteFile(path, []byte(testManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newTestCLI().RootCommand()

	want := []string{"export", "render", "validate", "browse", "serve", "documents", "cache", "completion"}
	have := map[string]bool{}
	for _, cmd := range root.Commands() {
		have[cmd.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("root command missing %q", name)
		}
	}
}

func TestExportCommand(t *testing.T) {
	manifest := writeManifest(t)
	output := filepath.Join(t.TempDir(), "lab.xml")

	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"export", manifest, "-o", output})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	xml := string(data)
	for _, want := range []string{
		`xmlns:nml="http://schemas.ogf.org/nml/2013/05/base"`,
		`<nml:Topology`,
		`name="sw1"`,
		`name="sw1:p1_in"`,
		`#hasOutboundPort`,
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("document missing %q:\n%s", want, xml)
		}
	}
}

func TestExportCommandBadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("nodes = 3"), 0o644); err != nil {
		t.Fatal(err)
	}

	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"export", path})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Fatal("export accepted a malformed manifest")
	}
}

func TestValidateCommand(t *testing.T) {
	manifest := writeManifest(t)

	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"validate", manifest})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateCommandDanglingLink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dangling.toml")
	broken := strings.Replace(testManifest, `b = "sw2:p1"`, `b = "sw3:p1"`, 1)
	if err := os.WriteFile(path, []byte(broken), 0o644); err != nil {
		t.Fatal(err)
	}

	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"validate", path})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Fatal("validate accepted a dangling link endpoint")
	}
}

func TestRenderCommandDOT(t *testing.T) {
	manifest := writeManifest(t)
	output := filepath.Join(t.TempDir(), "lab.dot")

	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"render", manifest, "-f", "dot", "-o", output})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "graph topology {") {
		t.Errorf("unexpected DOT output:\n%s", data)
	}
}

func TestRenderCommandRejectsUnknownFormat(t *testing.T) {
	manifest := writeManifest(t)

	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"render", manifest, "-f", "gif"})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Fatal("render accepted an unsupported format")
	}
}

func TestOpenOutput(t *testing.T) {
	w, err := openOutput("")
	if err != nil {
		t.Fatalf("openOutput(\"\"): %v", err)
	}
	if w != (nopCloser{os.Stdout}) {
		t.Error("empty path should wrap stdout")
	}
	if err := w.Close(); err != nil {
		t.Errorf("stdout close: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.txt")
	f, err := openOutput(path)
	if err != nil {
		t.Fatalf("openOutput(file): %v", err)
	}
	if _, err := f.Write([]byte("x")); err != nil {
		t.Errorf("write: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}
