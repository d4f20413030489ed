package cmd

import (
	"fmt"

	"github.com/kedare/plaza/internal/output"
	"github.com/kedare/plaza/internal/version"
	"github.com/spf13/cobra"
)

var versionOutput string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build metadata for this binary",
	Long:  "Display build time, commit, builder information, and target architecture embedded in the binary.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		out := cmd.OutOrStdout()

		if versionOutput == output.FormatJSON {
			return output.WriteJSON(out, info)
		}

		fmt.Fprintf(out, "Version:      %s\n", info.Version)
		fmt.Fprintf(out, "Commit:       %s\n", info.Commit)

		if relTime := info.RelativeTime(); relTime != "" {
			fmt.Fprintf(out, "Built:        %s (%s)\n", info.BuildDate, relTime)
		} else {
			fmt.Fprintf(out, "Built:        %s\n", info.BuildDate)
		}

		fmt.Fprintf(out, "Built By:     %s@%s\n", info.BuildUser, info.BuildHost)
		fmt.Fprintf(out, "Architecture: %s\n", info.BuildArch)
		fmt.Fprintf(out, "Go Version:   %s\n", info.GoVersion)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionOutput, "output", "o", "text", "Output format: text, json")
}
