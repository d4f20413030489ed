package cmd

import (
	"fmt"
	"strconv"

	"github.com/kedare/plaza/internal/filter"
	"github.com/kedare/plaza/internal/logger"
	"github.com/kedare/plaza/internal/nav"
	"github.com/kedare/plaza/internal/output"
	"github.com/kedare/plaza/internal/pagination"
	"github.com/kedare/plaza/internal/view"
	"github.com/spf13/cobra"
)

var listingsCmd = &cobra.Command{
	Use:     "listings",
	Aliases: []string{"l"},
	Short:   "Manage and query the local listings database",
}

// listFlags holds one value per filter field plus paging.
type listFlags struct {
	search        string
	propertyType  []string
	secondaryType []string
	propertySize  string
	percentLeased string
	locationType  []string
	existingPlus  []string
	rating        string
	sortBy        string
	page          int
	perPage       int
	view          string
	output        string
}

var listOpts listFlags

var listingsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print one page of listings",
	Long: `Print one page of listings as a table or JSON.

Filter flags are carried into the page links exactly as the interactive
browser would send them. Multi-select filters can be repeated or given as a
comma-separated list.

Examples:
  plaza listings list
  plaza listings list --page 3 --per-page 50 --sort name
  plaza listings list --property-type Office,Retail --search austin -o json`,
	Args: cobra.NoArgs,
	RunE: runListingsList,
}

func init() {
	rootCmd.AddCommand(listingsCmd)
	listingsCmd.AddCommand(listingsListCmd)

	f := listingsListCmd.Flags()
	f.StringVarP(&listOpts.search, "search", "s", "", "Search address, city, state or name")
	f.StringSliceVar(&listOpts.propertyType, "property-type", nil, "Property types to include")
	f.StringSliceVar(&listOpts.secondaryType, "secondary-type", nil, "Secondary types to include")
	f.StringVar(&listOpts.propertySize, "property-size", "", "Property size bucket")
	f.StringVar(&listOpts.percentLeased, "percent-leased", "", "Percent leased bucket")
	f.StringSliceVar(&listOpts.locationType, "location-type", nil, "Location types to include")
	f.StringSliceVar(&listOpts.existingPlus, "existing-plus", nil, "Existing / under construction statuses")
	f.StringVar(&listOpts.rating, "rating", "", "Minimum rating")
	f.StringVar(&listOpts.sortBy, "sort", "", "Sort order: name, city, rating, newest")
	f.IntVar(&listOpts.page, "page", 1, "Page number")
	f.IntVar(&listOpts.perPage, "per-page", 0, "Listings per page (default 25, or $PLAZA_PER_PAGE)")
	f.StringVar(&listOpts.view, "view", "", "View mode carried in the page links: map, list")
	f.StringVarP(&listOpts.output, "output", "o", output.DefaultFormat(output.FormatTable), "Output format: table, json")

	registerCatalogCompletion(listingsListCmd, "property-type", filter.PropertyTypes)
	registerCatalogCompletion(listingsListCmd, "secondary-type", filter.SecondaryTypes)
	registerCatalogCompletion(listingsListCmd, "property-size", filter.PropertySizes)
	registerCatalogCompletion(listingsListCmd, "percent-leased", filter.PercentLeased)
	registerCatalogCompletion(listingsListCmd, "location-type", filter.LocationTypes)
	registerCatalogCompletion(listingsListCmd, "existing-plus", filter.ExistingPlus)
	registerCatalogCompletion(listingsListCmd, "rating", filter.Ratings)
	registerCatalogCompletion(listingsListCmd, "sort", filter.SortKeys)
}

func registerCatalogCompletion(cmd *cobra.Command, flag string, catalog filter.Catalog) {
	values := make([]string, 0, len(catalog.Options))
	for _, o := range catalog.Concrete() {
		values = append(values, o.Value)
	}

	_ = cmd.RegisterFlagCompletionFunc(flag, cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
}

// request turns the flags into the navigation the browser would issue.
func (o listFlags) request(defaultPerPage int) (nav.Request, error) {
	state := filter.NewState()
	state.SetSearch(o.search)
	state.SetPropertyType(o.propertyType)
	state.SetSecondaryType(o.secondaryType)
	state.SetPropertySize(o.propertySize)
	state.SetPercentLeased(o.percentLeased)
	state.SetLocationType(o.locationType)
	state.SetExistingPlus(o.existingPlus)
	state.SetSortBy(o.sortBy)

	if o.rating != "" {
		if _, err := strconv.ParseFloat(o.rating, 64); err != nil {
			return nav.Request{}, fmt.Errorf("invalid rating %q: %w", o.rating, err)
		}

		state.SetSingle(filter.FieldRating, o.rating)
	}

	perPage := o.perPage
	if perPage == 0 {
		perPage = defaultPerPage
	}

	params := state.Params()
	params.Set(pagination.ParamPage, strconv.Itoa(max(o.page, 1)))
	params.Set(pagination.ParamPerPage, strconv.Itoa(perPage))

	if o.view != "" {
		mode, err := view.ParseMode(o.view)
		if err != nil {
			return nav.Request{}, err
		}

		params.Set(view.Param, mode.String())
	}

	return nav.NewRequest(params), nil
}

func runListingsList(cmd *cobra.Command, args []string) error {
	output.SetFormat(listOpts.output)

	req, err := listOpts.request(cfg.PerPage)
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	logger.Log.Debugf("Querying %s", req.URL())

	page, err := s.Page(commandContext(cmd), req)
	if err != nil {
		return err
	}

	state := filter.FromParams(req.Params)
	records := filter.Apply(page.Records, state)

	out := cmd.OutOrStdout()
	if err := output.RenderListings(out, records, page.Pagination, listOpts.output); err != nil {
		return err
	}

	if output.IsJSONMode() {
		return nil
	}

	if state.Search() != "" && len(records) != len(page.Records) {
		fmt.Fprintf(out, "%d of %d listings on this page match %q\n", len(records), len(page.Records), state.Search())
	}

	if page.Pagination.HasNext() {
		fmt.Fprintf(out, "Next page: %s\n", page.Pagination.NextPageURL)
	}

	return nil
}
