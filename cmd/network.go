package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/thirdweb-dev/blobflow/internal/network"
)

var (
	networkCmd = &cobra.Command{
		Use:   "network [name]",
		Short: "Show or change the selected network",
		Long:  "Without arguments prints the selected network. With a name (Mainnet or Sepolia) persists it as the new selection",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			RunNetwork(cmd, args)
		},
	}
)

func RunNetwork(cmd *cobra.Command, args []string) {
	a, err := newApp(cmd.Context())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open preferences")
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		current := a.selector.Current()
		for _, n := range network.Registry {
			marker := " "
			if n == current {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s (%s)\n", marker, n.Name, n.APIParam)
		}
		return
	}

	selected, err := a.selector.Select(cmd.Context(), args[0])
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to select network")
	}
	fmt.Fprintf(out, "Selected %s\n", selected.Name)
}
