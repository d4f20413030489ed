package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/kedare/plaza/internal/logger"
	"github.com/kedare/plaza/internal/output"
	"github.com/kedare/plaza/internal/store"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var statsOutput string

var listingsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count listings by property type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		counts, err := s.CountByType(commandContext(cmd))
		if err != nil {
			return err
		}

		rows := make([][2]string, 0, len(counts))
		for _, c := range counts {
			rows = append(rows, [2]string{c.PropertyType, strconv.Itoa(c.Count)})
		}

		return output.RenderTypeCounts(cmd.OutOrStdout(), rows, statsOutput)
	},
}

var listingsDeleteCmd = &cobra.Command{
	Use:     "delete <id>...",
	Aliases: []string{"rm"},
	Short:   "Remove listings from the database",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		var missing []string

		for _, id := range args {
			err := s.Delete(commandContext(cmd), id)
			switch {
			case errors.Is(err, store.ErrNotFound):
				missing = append(missing, id)
			case err != nil:
				return err
			default:
				logger.Log.Debugf("Deleted listing %s", id)
			}
		}

		if deleted := len(args) - len(missing); deleted > 0 {
			pterm.Success.Printfln("Deleted %d listing(s)", deleted)
		}

		if len(missing) > 0 {
			return fmt.Errorf("%w: %v", store.ErrNotFound, missing)
		}

		return nil
	},
	ValidArgsFunction: listingIDCompletion,
}

func init() {
	listingsCmd.AddCommand(listingsStatsCmd)
	listingsCmd.AddCommand(listingsDeleteCmd)

	listingsStatsCmd.Flags().StringVarP(&statsOutput, "output", "o", output.DefaultFormat(output.FormatTable), "Output format: table, json")
}

// listingIDCompletion completes ids from the configured database.
func listingIDCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	s, err := openStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	defer func() { _ = s.Close() }()

	ids, err := s.IDs(commandContext(cmd), toComplete)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	return ids, cobra.ShellCompDirectiveNoFileComp
}
