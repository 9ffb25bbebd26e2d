package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nmlgraph/nmlgraph/pkg/topology"
)

// exportCommand creates the export command, which builds a topology from a
// manifest and writes its NML XML document.
func (c *CLI) exportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [manifest]",
		Short: "Export a topology manifest as an NML XML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newProgress(c.Logger)

			m, err := buildFromManifest(args[0])
			if err != nil {
				return err
			}

			w, err := openOutput(output)
			if err != nil {
				return fmt.Errorf("open output: %w", err)
			}
			defer w.Close()

			if err := m.Document().Encode(w); err != nil {
				return fmt.Errorf("encode document: %w", err)
			}
			if output != "" {
				printSuccess("Exported %s", args[0])
				printFile(output)
			}
			p.done(fmt.Sprintf("Exported %d entities", m.Namespace().Len()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to stdout)")
	return cmd
}

// buildFromManifest loads and instantiates a topology manifest.
func buildFromManifest(path string) (*topology.Manager, error) {
	mf, err := topology.LoadManifest(path)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}
	m, err := mf.Build()
	if err != nil {
		return nil, fmt.Errorf("build topology: %w", err)
	}
	return m, nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
