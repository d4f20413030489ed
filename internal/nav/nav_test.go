package nav

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest("/properties?page=3&search=dallas&property_type=Office&property_type=Retail")
	require.NoError(t, err)
	require.Equal(t, "/properties", req.Path)
	require.Equal(t, "3", req.Get("page"))
	require.Equal(t, []string{"Office", "Retail"}, req.Params["property_type"])
}

func TestParseRequestDefaultsPath(t *testing.T) {
	req, err := ParseRequest("?page=2")
	require.NoError(t, err)
	require.Equal(t, ListingsPath, req.Path)
}

func TestRequestURL(t *testing.T) {
	require.Equal(t, "/properties", NewRequest(nil).URL())

	req := NewRequest(url.Values{"search": {"dallas"}, "page": {"1"}})
	require.Equal(t, "/properties?page=1&search=dallas", req.URL())
}

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	_, ok := rec.Last()
	require.False(t, ok)

	require.NoError(t, rec.Navigate(context.Background(), NewRequest(nil)))
	require.NoError(t, rec.Navigate(context.Background(), NewRequest(url.Values{"page": {"2"}})))

	require.Len(t, rec.Requests(), 2)
	last, ok := rec.Last()
	require.True(t, ok)
	require.Equal(t, "2", last.Get("page"))
}
