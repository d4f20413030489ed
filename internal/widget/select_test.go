package widget

import (
	"testing"

	"github.com/kedare/plaza/internal/filter"
	"github.com/stretchr/testify/require"
)

func newPropertyTypeSelect(style LabelStyle, sink *[]string) *MultiSelect {
	d := NewDropdown("property_type", NewPointerSource(), func() Rect { return Rect{} })
	return NewMultiSelect(d, filter.PropertyTypes, style, func(v []string) {
		if sink != nil {
			*sink = v
		}
	})
}

func TestSelectAllFromNone(t *testing.T) {
	var emitted []string
	m := newPropertyTypeSelect(LabelCount, &emitted)

	next := m.ToggleAll(nil)
	require.Len(t, filter.PropertyTypes.Options, 12)
	require.Len(t, next, 11)
	require.NotContains(t, next, filter.SelectAll)
	require.Equal(t, next, emitted)
	require.True(t, m.IsAll(next))
}

func TestSelectAllFromAllClears(t *testing.T) {
	m := newPropertyTypeSelect(LabelCount, nil)

	all := m.ToggleAll(nil)
	none := m.ToggleAll(all)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestSelectAllFromPartialSelectsEverything(t *testing.T) {
	m := newPropertyTypeSelect(LabelCount, nil)

	next := m.ToggleAll([]string{"Office", "Land"})
	require.Len(t, next, 11)
}

func TestSelectAllTwiceIsInverseOnlyFromAllOrNone(t *testing.T) {
	m := newPropertyTypeSelect(LabelCount, nil)
	all := m.ToggleAll(nil)

	starts := map[string][]string{
		"none":    {},
		"all":     all,
		"partial": {"Retail"},
	}

	for name, start := range starts {
		twice := m.ToggleAll(m.ToggleAll(start))
		if name == "partial" {
			require.NotEqual(t, start, twice, name)
		} else {
			require.ElementsMatch(t, start, twice, name)
		}
	}
}

func TestToggleSingleOption(t *testing.T) {
	m := newPropertyTypeSelect(LabelCount, nil)

	sel := m.Toggle(nil, "Retail")
	require.Equal(t, []string{"Retail"}, sel)

	sel = m.Toggle(sel, "Office")
	require.Equal(t, []string{"Office", "Retail"}, sel, "catalog order is kept")

	sel = m.Toggle(sel, "Retail")
	require.Equal(t, []string{"Office"}, sel)

	sel = m.Toggle(sel, "Custom")
	require.Equal(t, []string{"Office", "Custom"}, sel)
}

func TestToggleSelectAllRowDelegates(t *testing.T) {
	m := newPropertyTypeSelect(LabelCount, nil)

	sel := m.Toggle(nil, filter.SelectAll)
	require.Len(t, sel, 11)
	require.True(t, m.IsSelected(sel, filter.SelectAll))
	require.True(t, m.IsSelected(sel, "Flex"))

	sel = m.Toggle(sel, "Flex")
	require.False(t, m.IsSelected(sel, filter.SelectAll))
}

func TestMultiSelectLabels(t *testing.T) {
	count := newPropertyTypeSelect(LabelCount, nil)
	overflow := newPropertyTypeSelect(LabelOverflow, nil)

	require.Equal(t, "All Property Types", count.Label(nil))
	require.Equal(t, "Office", count.Label([]string{"Office"}))
	require.Equal(t, "3 Selected", count.Label([]string{"Office", "Retail", "Land"}))

	require.Equal(t, "All Property Types", overflow.Label([]string{}))
	require.Equal(t, "Office +2", overflow.Label([]string{"Office", "Retail", "Land"}))
}

func TestSingleSelect(t *testing.T) {
	src := NewPointerSource()
	var got string
	s := NewSingleSelect(NewDropdown("size", src, func() Rect { return Rect{} }), filter.PropertySizes, func(v string) {
		got = v
	})

	require.Equal(t, "Property Size", s.Label(""))

	s.Open()
	require.Equal(t, 1, src.Subscribers())

	s.Select("gt-250k")
	require.Equal(t, "gt-250k", got)
	require.False(t, s.IsOpen())
	require.Equal(t, 0, src.Subscribers())
	require.Equal(t, "> 250,000 SF", s.Label(got))
}
