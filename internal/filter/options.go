package filter

// SelectAll is the value of the pseudo-row that stands for "every concrete
// option". It is never stored in a selection.
const SelectAll = "Select All"

// Option is one row of a dropdown.
type Option struct {
	Value string
	Label string
}

// IsSelectAll reports whether the option is the "Select All" pseudo-row.
func (o Option) IsSelectAll() bool {
	return o.Value == SelectAll
}

// Catalog describes the dropdown bound to one filter field.
type Catalog struct {
	Field       Field
	Title       string
	Placeholder string
	Multi       bool
	Options     []Option
}

// Concrete returns the catalog options without the "Select All" pseudo-row.
func (c Catalog) Concrete() []Option {
	out := make([]Option, 0, len(c.Options))
	for _, o := range c.Options {
		if !o.IsSelectAll() {
			out = append(out, o)
		}
	}

	return out
}

// LabelFor returns the label of value, or value itself when unknown.
func (c Catalog) LabelFor(value string) string {
	for _, o := range c.Options {
		if o.Value == value {
			return o.Label
		}
	}

	return value
}

func plain(values ...string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Label: v}
	}

	return out
}

func withSelectAll(values ...string) []Option {
	return append([]Option{{Value: SelectAll, Label: SelectAll}}, plain(values...)...)
}

var (
	PropertyTypes = Catalog{
		Field:       FieldPropertyType,
		Title:       "Property Type",
		Placeholder: "All Property Types",
		Multi:       true,
		Options: withSelectAll(
			"Office",
			"Retail",
			"Industrial",
			"Multifamily",
			"Hospitality",
			"Land",
			"Mixed Use",
			"Healthcare",
			"Self Storage",
			"Flex",
			"Special Purpose",
		),
	}

	SecondaryTypes = Catalog{
		Field:       FieldSecondaryType,
		Title:       "Secondary Type",
		Placeholder: "Secondary Type",
		Multi:       true,
		Options: withSelectAll(
			"Medical Office",
			"Creative Office",
			"Strip Center",
			"Neighborhood Center",
			"Warehouse",
			"Distribution",
			"Data Center",
			"Garden Apartments",
			"Mid-Rise",
		),
	}

	LocationTypes = Catalog{
		Field:       FieldLocationType,
		Title:       "Location",
		Placeholder: "Location Type",
		Multi:       true,
		Options:     withSelectAll("CBD", "Urban", "Suburban", "Rural"),
	}

	ExistingPlus = Catalog{
		Field:       FieldExistingPlus,
		Title:       "Status",
		Placeholder: "Existing +",
		Multi:       true,
		Options:     withSelectAll("Existing", "Under Construction", "Proposed", "Under Renovation"),
	}

	PropertySizes = Catalog{
		Field:       FieldPropertySize,
		Title:       "Size",
		Placeholder: "Property Size",
		Options: []Option{
			{Value: "lt-10k", Label: "< 10,000 SF"},
			{Value: "10k-50k", Label: "10,000 - 50,000 SF"},
			{Value: "50k-100k", Label: "50,000 - 100,000 SF"},
			{Value: "100k-250k", Label: "100,000 - 250,000 SF"},
			{Value: "gt-250k", Label: "> 250,000 SF"},
		},
	}

	PercentLeased = Catalog{
		Field:       FieldPercentLeased,
		Title:       "Leased",
		Placeholder: "% Leased",
		Options: []Option{
			{Value: "0-25", Label: "0 - 25%"},
			{Value: "25-50", Label: "25 - 50%"},
			{Value: "50-75", Label: "50 - 75%"},
			{Value: "75-100", Label: "75 - 100%"},
		},
	}

	Ratings = Catalog{
		Field:       FieldRating,
		Title:       "Rating",
		Placeholder: "Any Rating",
		Options: []Option{
			{Value: "4", Label: "4+ ★"},
			{Value: "3", Label: "3+ ★"},
			{Value: "2", Label: "2+ ★"},
			{Value: "1", Label: "1+ ★"},
		},
	}

	SortKeys = Catalog{
		Field:       FieldSortBy,
		Title:       "Sort",
		Placeholder: "Sort By",
		Options: []Option{
			{Value: "name", Label: "Name"},
			{Value: "city", Label: "City"},
			{Value: "rating", Label: "Rating"},
			{Value: "newest", Label: "Newest"},
		},
	}
)

// Catalogs returns every dropdown catalog in filter bar order.
func Catalogs() []Catalog {
	return []Catalog{
		PropertyTypes,
		SecondaryTypes,
		PropertySizes,
		PercentLeased,
		LocationTypes,
		ExistingPlus,
		Ratings,
		SortKeys,
	}
}
