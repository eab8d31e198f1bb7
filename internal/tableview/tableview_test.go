package tableview

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID     string
	Name   string
	Status string
}

func rowID(r row) string { return r.ID }

func filterRows(items []row, searchTerm string, filters map[string]string) []row {
	var out []row
	for _, r := range items {
		if status := filters["status"]; status != "" && status != "All" && r.Status != status {
			continue
		}
		if searchTerm != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(searchTerm)) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func makeRows(n int) []row {
	rows := make([]row, n)
	for i := range rows {
		status := "published"
		if i%2 == 0 {
			status = "draft"
		}
		rows[i] = row{
			ID:     fmt.Sprintf("id-%02d", i),
			Name:   fmt.Sprintf("row number %02d", i),
			Status: status,
		}
	}
	return rows
}

func TestSearchAndFilterResetPage(t *testing.T) {
	tv := New(makeRows(25), rowID, filterRows, 10)

	tv.GoToPage(3)
	require.Equal(t, 3, tv.CurrentPage())

	tv.SetSearchTerm("row")
	assert.Equal(t, 1, tv.CurrentPage())

	tv.GoToPage(2)
	tv.SetFilter("status", "draft")
	assert.Equal(t, 1, tv.CurrentPage())
}

func TestPaginationBoundaries(t *testing.T) {
	tv := New(makeRows(25), rowID, filterRows, 10)
	require.Equal(t, 3, tv.TotalPages())

	tv.PreviousPage()
	assert.Equal(t, 1, tv.CurrentPage())

	tv.GoToPage(3)
	tv.NextPage()
	assert.Equal(t, 3, tv.CurrentPage())

	tv.GoToPage(99)
	assert.Equal(t, 3, tv.CurrentPage())
	tv.GoToPage(-1)
	assert.Equal(t, 1, tv.CurrentPage())
}

func TestTotalPagesNeverBelowOne(t *testing.T) {
	tv := New([]row{}, rowID, filterRows, 10)
	assert.Equal(t, 1, tv.TotalPages())
	assert.Empty(t, tv.PaginatedData())
	assert.Nil(t, tv.Pagination())
}

func TestSelectionSurvivesPagination(t *testing.T) {
	tv := New(makeRows(25), rowID, filterRows, 10)

	first := tv.PaginatedData()[0]
	tv.ToggleSelection(first.ID)
	require.True(t, tv.IsSelected(first.ID))

	tv.NextPage()
	for _, r := range tv.PaginatedData() {
		require.NotEqual(t, first.ID, r.ID)
	}
	assert.True(t, tv.IsSelected(first.ID))
	assert.False(t, tv.AreAllSelected())
}

func TestSelectionSurvivesFiltering(t *testing.T) {
	tv := New(makeRows(25), rowID, filterRows, 10)

	tv.ToggleSelection("id-01")
	tv.SetFilter("status", "draft") // id-01 is published, filtered out
	assert.True(t, tv.IsSelected("id-01"))

	tv.ClearFilters()
	assert.True(t, tv.IsSelected("id-01"))
}

func TestToggleSelectAllIsIdempotentPerPage(t *testing.T) {
	tv := New(makeRows(25), rowID, filterRows, 10)

	tv.ToggleSelection("id-23") // belongs to page 3
	before := tv.SelectedIDs()

	tv.ToggleSelectAll()
	assert.True(t, tv.AreAllSelected())
	assert.Len(t, tv.SelectedIDs(), 11)

	tv.ToggleSelectAll()
	assert.False(t, tv.AreAllSelected())
	assert.Equal(t, before, tv.SelectedIDs())
}

func TestToggleSelectAllOnlyTouchesCurrentPage(t *testing.T) {
	tv := New(makeRows(25), rowID, filterRows, 10)

	tv.ToggleSelectAll()
	tv.NextPage()
	tv.ToggleSelectAll()
	assert.Len(t, tv.SelectedIDs(), 20)

	// Deselecting page 2 must not disturb page 1's selection.
	tv.ToggleSelectAll()
	assert.Len(t, tv.SelectedIDs(), 10)
	assert.True(t, tv.IsSelected("id-00"))
	assert.False(t, tv.IsSelected("id-10"))
}

func TestToggleSelectionToleratesUnknownIDs(t *testing.T) {
	tv := New(makeRows(5), rowID, filterRows, 10)

	tv.ToggleSelection("ghost")
	assert.True(t, tv.IsSelected("ghost"))
	tv.ToggleSelection("ghost")
	assert.False(t, tv.IsSelected("ghost"))
}

func TestClearSelection(t *testing.T) {
	tv := New(makeRows(5), rowID, filterRows, 10)
	tv.ToggleSelectAll()
	require.NotEmpty(t, tv.SelectedIDs())

	tv.ClearSelection()
	assert.Empty(t, tv.SelectedIDs())
}

func TestHasActiveFilters(t *testing.T) {
	tv := New(makeRows(5), rowID, filterRows, 10)
	assert.False(t, tv.HasActiveFilters())

	tv.SetSearchTerm("x")
	assert.True(t, tv.HasActiveFilters())

	tv.ClearFilters()
	assert.False(t, tv.HasActiveFilters())

	tv.SetFilter("status", "All")
	assert.False(t, tv.HasActiveFilters())
	tv.SetFilter("status", "")
	assert.False(t, tv.HasActiveFilters())
	tv.SetFilter("status", "draft")
	assert.True(t, tv.HasActiveFilters())
}

func TestClearFiltersKeepsSelection(t *testing.T) {
	tv := New(makeRows(25), rowID, filterRows, 10)

	tv.ToggleSelection("id-03")
	tv.SetSearchTerm("number 1")
	tv.ClearFilters()

	assert.Equal(t, "", tv.SearchTerm())
	assert.Empty(t, tv.Filters())
	assert.Equal(t, 1, tv.CurrentPage())
	assert.True(t, tv.IsSelected("id-03"))
}

func TestFilteredAndPaginatedData(t *testing.T) {
	tv := New(makeRows(25), rowID, filterRows, 10)

	tv.SetFilter("status", "draft")
	assert.Len(t, tv.FilteredData(), 13)
	assert.Equal(t, 2, tv.TotalPages())

	tv.GoToPage(2)
	assert.Len(t, tv.PaginatedData(), 3)
}

func TestPaginationWindow(t *testing.T) {
	tv := New(makeRows(95), rowID, filterRows, 10)
	require.Equal(t, 10, tv.TotalPages())

	p := tv.Pagination()
	require.NotNil(t, p)
	assert.Equal(t, []int{1, 2, 3}, p.Pages)
	assert.False(t, p.HasPrev)
	assert.True(t, p.HasNext)

	tv.GoToPage(5)
	p = tv.Pagination()
	assert.Equal(t, []int{3, 4, 5, 6, 7}, p.Pages)
	assert.True(t, p.HasPrev)
	assert.True(t, p.HasNext)

	tv.GoToPage(10)
	p = tv.Pagination()
	assert.Equal(t, []int{8, 9, 10}, p.Pages)
	assert.True(t, p.HasPrev)
	assert.False(t, p.HasNext)
}

func TestDefaultItemsPerPage(t *testing.T) {
	tv := New(makeRows(25), rowID, filterRows, 0)
	assert.Len(t, tv.PaginatedData(), DefaultItemsPerPage)
}

func TestNilFilterFunc(t *testing.T) {
	tv := New(makeRows(5), rowID, nil, 10)
	assert.Len(t, tv.FilteredData(), 5)
}
