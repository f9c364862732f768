package service

import (
	"testing"
	"time"

	"github.com/netserve/catalog/internal/types"
	"github.com/stretchr/testify/assert"
)

type listingRow struct {
	Name     string
	Group    string
	Rank     int
	StartsAt *time.Time
}

func listingRowFields() ListingFields[listingRow] {
	return ListingFields[listingRow]{
		SearchText: func(r listingRow) []string {
			return []string{r.Name}
		},
		FilterValue: func(r listingRow, field string) string {
			if field == "group" {
				return r.Group
			}
			return ""
		},
		SortKey: func(r listingRow, field string) SortKey {
			switch field {
			case "rank":
				return NumericKey(float64(r.Rank))
			case "starts_at":
				return TimeKey(r.StartsAt)
			}
			return StringKey(r.Name)
		},
	}
}

func sampleRows() []listingRow {
	return []listingRow{
		{Name: "Fiber Pro", Group: "fiber", Rank: 3},
		{Name: "Wireless Basic", Group: "wireless", Rank: 1},
		{Name: "Fiber Home", Group: "fiber", Rank: 2},
		{Name: "Copper Legacy", Group: "copper", Rank: 4},
	}
}

func TestApplyListingEmptyParamsIsIdentity(t *testing.T) {
	rows := sampleRows()
	got := ApplyListing(rows, types.ListingParams{}, listingRowFields())
	assert.Equal(t, rows, got)
}

func TestApplyListingDoesNotMutateInput(t *testing.T) {
	rows := sampleRows()
	original := sampleRows()

	ApplyListing(rows, types.ListingParams{
		SortField:     "rank",
		SortDirection: types.SortDirectionDesc,
	}, listingRowFields())

	assert.Equal(t, original, rows)
}

func TestApplyListingSearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := ApplyListing(sampleRows(), types.ListingParams{Search: "fIbEr"}, listingRowFields())
	assert.Len(t, got, 2)
	assert.Equal(t, "Fiber Pro", got[0].Name)
	assert.Equal(t, "Fiber Home", got[1].Name)

	assert.Empty(t, ApplyListing(sampleRows(), types.ListingParams{Search: "satellite"}, listingRowFields()))
}

func TestApplyListingFilterExactMatch(t *testing.T) {
	got := ApplyListing(sampleRows(), types.ListingParams{
		Filters: map[string]string{"group": "fiber"},
	}, listingRowFields())
	assert.Len(t, got, 2)
}

func TestApplyListingFilterAllMeansNoConstraint(t *testing.T) {
	all := ApplyListing(sampleRows(), types.ListingParams{
		Filters: map[string]string{"group": types.FilterValueAll},
	}, listingRowFields())
	assert.Len(t, all, 4)

	empty := ApplyListing(sampleRows(), types.ListingParams{
		Filters: map[string]string{"group": ""},
	}, listingRowFields())
	assert.Len(t, empty, 4)
}

func TestApplyListingSortAscAndDesc(t *testing.T) {
	asc := ApplyListing(sampleRows(), types.ListingParams{SortField: "rank"}, listingRowFields())
	assert.Equal(t, []int{1, 2, 3, 4}, ranks(asc))

	desc := ApplyListing(sampleRows(), types.ListingParams{
		SortField:     "rank",
		SortDirection: types.SortDirectionDesc,
	}, listingRowFields())
	assert.Equal(t, []int{4, 3, 2, 1}, ranks(desc))
}

func TestApplyListingSortIsStable(t *testing.T) {
	rows := []listingRow{
		{Name: "c", Group: "x", Rank: 1},
		{Name: "a", Group: "x", Rank: 1},
		{Name: "b", Group: "x", Rank: 1},
	}

	// Equal keys keep input order in both directions; descending flips the
	// comparator, not the slice.
	asc := ApplyListing(rows, types.ListingParams{SortField: "rank"}, listingRowFields())
	assert.Equal(t, []string{"c", "a", "b"}, names(asc))

	desc := ApplyListing(rows, types.ListingParams{
		SortField:     "rank",
		SortDirection: types.SortDirectionDesc,
	}, listingRowFields())
	assert.Equal(t, []string{"c", "a", "b"}, names(desc))
}

func TestApplyListingNilTimeSortsLowest(t *testing.T) {
	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := []listingRow{
		{Name: "late", StartsAt: &late},
		{Name: "none"},
		{Name: "early", StartsAt: &early},
	}

	got := ApplyListing(rows, types.ListingParams{SortField: "starts_at"}, listingRowFields())
	assert.Equal(t, []string{"none", "early", "late"}, names(got))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	assert.Equal(t, []int{1, 2, 3}, Paginate(items, 1, 3))
	assert.Equal(t, []int{4, 5, 6}, Paginate(items, 2, 3))

	// Last page is partial.
	assert.Equal(t, []int{7}, Paginate(items, 3, 3))

	// Out-of-range pages yield empty, not an error.
	assert.Empty(t, Paginate(items, 4, 3))
	assert.Empty(t, Paginate(items, 100, 3))

	// Page zero and negatives behave as page one.
	assert.Equal(t, []int{1, 2, 3}, Paginate(items, 0, 3))
	assert.Equal(t, []int{1, 2, 3}, Paginate(items, -2, 3))
}

func TestPaginateEmptyInput(t *testing.T) {
	assert.Empty(t, Paginate([]int{}, 1, 10))
}

func ranks(rows []listingRow) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.Rank
	}
	return out
}

func names(rows []listingRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}
