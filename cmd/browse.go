package cmd

import (
	"fmt"
	"strconv"

	"github.com/kedare/plaza/internal/config"
	"github.com/kedare/plaza/internal/filter"
	"github.com/kedare/plaza/internal/logger"
	"github.com/kedare/plaza/internal/nav"
	"github.com/kedare/plaza/internal/pagination"
	"github.com/kedare/plaza/internal/tui"
	"github.com/kedare/plaza/internal/view"
	"github.com/spf13/cobra"
)

var (
	browseView    string
	browsePerPage int
	browseSearch  string
	browseLogFile string
)

var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"b", "ui"},
	Short:   "Browse listings in an interactive map or list view",
	Long: `Start the terminal UI on the first page of listings.

The browser shows a filter bar, the current page as a map or a list, a details
panel and pagination controls. Dropdown changes apply when you press Apply;
the search field narrows the current page as you type.

Press '?' at any time to see keyboard shortcuts.

Examples:
  plaza browse
  plaza browse --view list --per-page 50
  plaza browse --search austin`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringVar(&browseView, "view", view.ModeMap.String(), "Initial view: map, list")
	browseCmd.Flags().IntVar(&browsePerPage, "per-page", 0, "Listings per page (default 25, or $PLAZA_PER_PAGE)")
	browseCmd.Flags().StringVar(&browseSearch, "search", "", "Initial search term")
	browseCmd.Flags().StringVar(&browseLogFile, "log-file", "", "Write diagnostics to this file while the UI runs")

	_ = browseCmd.RegisterFlagCompletionFunc("view", cobra.FixedCompletions(
		[]string{view.ModeMap.String(), view.ModeList.String()}, cobra.ShellCompDirectiveNoFileComp))
}

// browseRequest builds the first navigation from the command-line flags.
func browseRequest(mode view.Mode, perPage int, search string) nav.Request {
	state := filter.NewState()
	state.SetSearch(search)

	params := state.Params()
	params.Set(pagination.ParamPage, "1")
	params.Set(pagination.ParamPerPage, strconv.Itoa(config.ClampPerPage(perPage)))

	if mode == view.ModeList {
		params.Set(view.Param, mode.String())
	}

	return nav.NewRequest(params)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	mode, err := view.ParseMode(browseView)
	if err != nil {
		return err
	}

	perPage := browsePerPage
	if perPage == 0 {
		perPage = cfg.PerPage
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	restore, err := logger.RedirectToFile(browseLogFile)
	if err != nil {
		return err
	}
	defer restore()

	app := tui.NewApp(commandContext(cmd), &tui.Config{
		Loader:  s,
		Request: browseRequest(mode, perPage, browseSearch),
		Source:  s.Path(),
	})

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
