package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmlgraph/nmlgraph/pkg/nml"
)

// validateCommand creates the validate command, which builds a manifest
// without producing output and reports what it found. Schema violations
// (unknown attributes, disallowed relation targets, cardinality mismatches,
// identifier collisions) surface as errors here.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [manifest]",
		Short: "Validate a topology manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := buildFromManifest(args[0])
			if err != nil {
				printError("Invalid manifest")
				return err
			}

			kinds := map[nml.Kind]int{}
			for _, e := range m.Namespace().Entities() {
				kinds[e.Kind()]++
			}

			printSuccess("Valid manifest: %s", args[0])
			printKeyValue("entities", fmt.Sprintf("%d", m.Namespace().Len()))
			printKeyValue("nodes", fmt.Sprintf("%d", kinds[nml.KindNode]))
			printKeyValue("biports", fmt.Sprintf("%d", kinds[nml.KindBidirectionalPort]))
			printKeyValue("bilinks", fmt.Sprintf("%d", kinds[nml.KindBidirectionalLink]))
			printNextStep("Export it", fmt.Sprintf("nmlgraph export %s", args[0]))
			return nil
		},
	}
}
