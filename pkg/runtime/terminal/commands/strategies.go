package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/rightsize/pkg/services/strategy"
)

func NewStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available optimization strategies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range strategy.Strategies() {
				_, profile := strategy.ProfileFor(name)
				_, err := fmt.Fprintf(cmd.OutOrStdout(),
					"%-14s risk ceiling %-6s projected max cpu %.0f%%, mem %.0f%%\n",
					name, profile.RiskCeiling, profile.MaxProjectedCPU, profile.MaxProjectedMemory)
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}
