package filter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateSettersReplace(t *testing.T) {
	s := NewState()
	s.SetPropertyType([]string{"Office", "Retail"})
	s.SetPropertyType([]string{"Land"})
	require.Equal(t, []string{"Land"}, s.PropertyType())

	s.SetSearch("anything at all !")
	require.Equal(t, "anything at all !", s.Search())

	s.SetMulti(FieldLocationType, []string{"CBD"})
	require.Equal(t, []string{"CBD"}, s.Multi(FieldLocationType))

	s.SetSingle(FieldPercentLeased, "50-75")
	require.Equal(t, "50-75", s.PercentLeased())
}

func TestStateReturnsCopies(t *testing.T) {
	input := []string{"Office"}
	s := NewState()
	s.SetPropertyType(input)
	input[0] = "Mutated"

	got := s.PropertyType()
	require.Equal(t, []string{"Office"}, got)

	got[0] = "Mutated"
	require.Equal(t, []string{"Office"}, s.PropertyType())
}

func TestStateRating(t *testing.T) {
	s := NewState()
	_, ok := s.Rating()
	require.False(t, ok)

	s.SetRating(3.5)
	v, ok := s.Rating()
	require.True(t, ok)
	require.InDelta(t, 3.5, v, 0.0001)

	s.ClearRating()
	_, ok = s.Rating()
	require.False(t, ok)
}

func TestStateClone(t *testing.T) {
	s := NewState()
	s.SetExistingPlus([]string{"Existing"})
	s.SetRating(4)

	c := s.Clone()
	c.SetExistingPlus([]string{"Proposed"})
	c.SetRating(1)

	require.Equal(t, []string{"Existing"}, s.ExistingPlus())
	v, _ := s.Rating()
	require.InDelta(t, 4.0, v, 0.0001)
}

func TestParamsOmitEmptyFields(t *testing.T) {
	require.Empty(t, NewState().Params())

	s := NewState()
	s.SetSearch("dallas")
	s.SetPropertyType([]string{"Office", "Retail"})
	s.SetRating(4.5)

	params := s.Params()
	require.Equal(t, "dallas", params.Get("search"))
	require.Equal(t, []string{"Office", "Retail"}, params["property_type"])
	require.Equal(t, "4.5", params.Get("rating"))
	require.NotContains(t, params, "sort_by")
}

func TestFromParamsRoundTrip(t *testing.T) {
	s := NewState()
	s.SetSearch("austin")
	s.SetPropertyType([]string{"Office"})
	s.SetSecondaryType([]string{"Warehouse", "Data Center"})
	s.SetPropertySize("10k-50k")
	s.SetPercentLeased("75-100")
	s.SetLocationType([]string{"Urban"})
	s.SetExistingPlus([]string{"Proposed"})
	s.SetRating(2)
	s.SetSortBy("newest")

	got := FromParams(s.Params())
	require.Equal(t, s.Params(), got.Params())
}

func TestFromParamsIgnoresPagingAndBadRating(t *testing.T) {
	s := FromParams(url.Values{"page": {"3"}, "per_page": {"50"}, "rating": {"five"}})
	require.Empty(t, s.Params())

	require.NotNil(t, FromParams(nil))
}

func TestCatalogs(t *testing.T) {
	require.Len(t, PropertyTypes.Options, 12)
	require.Len(t, PropertyTypes.Concrete(), 11)
	require.True(t, PropertyTypes.Options[0].IsSelectAll())

	require.Equal(t, "< 10,000 SF", PropertySizes.LabelFor("lt-10k"))
	require.Equal(t, "unknown", PropertySizes.LabelFor("unknown"))

	for _, c := range Catalogs() {
		require.NotEmpty(t, c.Options, c.Title)
		require.NotEmpty(t, c.Placeholder, c.Title)
	}
}

func TestSingleRating(t *testing.T) {
	s := NewState()
	require.Equal(t, "", s.Single(FieldRating))

	s.SetSingle(FieldRating, "4")
	v, ok := s.Rating()
	require.True(t, ok)
	require.Equal(t, 4.0, v)
	require.Equal(t, "4", s.Single(FieldRating))
	require.Equal(t, "4+ ★", Ratings.LabelFor(s.Single(FieldRating)))

	s.SetSingle(FieldRating, "")
	_, ok = s.Rating()
	require.False(t, ok)
}
