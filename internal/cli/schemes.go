package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vis-go/colour"
)

func newSchemesCmd() *cobra.Command {
	var palette bool
	cmd := &cobra.Command{
		Use:   "schemes",
		Short: "List the colour schemes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if palette {
				for _, c := range colour.Colours() {
					fmt.Fprintf(out, "%-20s %s\n", c.Name(), c.Hex())
				}
				return nil
			}
			for _, s := range colour.Schemes() {
				fmt.Fprintf(out, "%-20s %s\n", s.Name, strings.Join(s.Hexes(), " "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&palette, "palette", false, "list the named palette colours instead")
	return cmd
}
