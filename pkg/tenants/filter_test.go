package tenants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterIdentityReturnsEverythingInOrder(t *testing.T) {
	records := Seed()
	view := Filter(records, Criteria{Search: "", Plan: All, Status: All})

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, view.IDs())
	assert.Equal(t, 7, view.TotalCount)
	assert.Equal(t, 6, view.ActiveCount)
	assert.Equal(t, 5475, view.TotalChatsMonth)
	assert.Equal(t, int64(4393000), view.TotalMRR)
}

func TestFilterByProfessionalPlan(t *testing.T) {
	view := Filter(Seed(), Criteria{Plan: "Professional"})

	assert.Equal(t, []int{1, 4, 7}, view.IDs())
	assert.Equal(t, 3, view.TotalCount)
	assert.Equal(t, 2, view.ActiveCount)
	assert.Equal(t, int64(1797000), view.TotalMRR)
	assert.Equal(t, 892+445+678, view.TotalChatsMonth)
}

func TestFilterByInactiveStatus(t *testing.T) {
	view := Filter(Seed(), Criteria{Status: "inactive"})
	assert.Equal(t, []int{4}, view.IDs())

	dropdown := Filter(Seed(), Criteria{Status: "Inactive"})
	assert.Equal(t, []int{4}, dropdown.IDs())
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	view := Filter(Seed(), Criteria{Search: "royal"})
	require.Len(t, view.Records, 1)
	assert.Equal(t, "Royal Wedding Planner", view.Records[0].BusinessName)

	upper := Filter(Seed(), Criteria{Search: "ROYAL WEDDING"})
	assert.Equal(t, view.IDs(), upper.IDs())
}

func TestFilterSearchKeepsWhitespace(t *testing.T) {
	cases := []struct {
		search string
		want   []int
	}{
		{search: "r ", want: []int{}},
		{search: "   ", want: []int{}},
		{search: " wedding co ", want: []int{}},
		{search: " wedding co", want: []int{6}},
	}
	for _, tc := range cases {
		view := Filter(Seed(), Criteria{Search: tc.search})
		assert.Equal(t, tc.want, view.IDs(), "search %q", tc.search)
		assert.Equal(t, len(tc.want), view.TotalCount, "search %q", tc.search)
	}
	assert.False(t, Criteria{Search: "   "}.IsZero())
}

func TestFilterEmptyResult(t *testing.T) {
	view := Filter(Seed(), Criteria{Search: "no such organizer"})

	assert.NotNil(t, view.Records)
	assert.Empty(t, view.Records)
	assert.Zero(t, view.TotalCount)
	assert.Zero(t, view.ActiveCount)
	assert.Zero(t, view.TotalChatsMonth)
	assert.Zero(t, view.TotalMRR)
}

func TestFilterEmptyInput(t *testing.T) {
	view := Filter(nil, Criteria{Plan: "Business"})
	assert.Empty(t, view.Records)
	assert.Zero(t, view.TotalCount)
	assert.Zero(t, view.TotalMRR)
}

func TestFilterUnknownEnumsDoNotRestrict(t *testing.T) {
	all := Filter(Seed(), Criteria{})
	view := Filter(Seed(), Criteria{Plan: "Enterprise", Status: "suspended"})
	assert.Equal(t, all, view)
}

func TestFilterCombinesCriteriaWithAnd(t *testing.T) {
	records := Seed()
	cases := []struct {
		name string
		a    Criteria
		b    Criteria
	}{
		{name: "search and plan", a: Criteria{Search: "ba"}, b: Criteria{Plan: "Professional"}},
		{name: "plan and status", a: Criteria{Plan: "Professional"}, b: Criteria{Status: "active"}},
		{name: "search and status", a: Criteria{Search: "wedding"}, b: Criteria{Status: "inactive"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			combined := Criteria{
				Search: tc.a.Search + tc.b.Search,
				Plan:   tc.a.Plan + tc.b.Plan,
				Status: tc.a.Status + tc.b.Status,
			}
			got := Filter(records, combined).IDs()
			assert.Equal(t, intersect(Filter(records, tc.a).IDs(), Filter(records, tc.b).IDs()), got)
		})
	}

	view := Filter(records, Criteria{Search: "ba", Plan: "Professional", Status: "active"})
	assert.Equal(t, []int{7}, view.IDs())
}

func TestFilterIsIdempotentAndDoesNotMutate(t *testing.T) {
	records := Seed()
	snapshot := append([]Record(nil), records...)
	criteria := Criteria{Search: "wedding", Plan: "business"}

	first := Filter(records, criteria)
	second := Filter(records, criteria)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, records)

	first.Records[0].BusinessName = "changed"
	assert.Equal(t, snapshot, records)
}

func TestCriteriaNormalize(t *testing.T) {
	got := Criteria{Search: "  bali ", Plan: "starter", Status: "bogus"}.Normalize()
	assert.Equal(t, Criteria{Search: "  bali ", Plan: "Starter", Status: All}, got)
	assert.True(t, Criteria{Plan: "All", Status: "ALL"}.IsZero())
	assert.False(t, Criteria{Status: "active"}.IsZero())
}

func intersect(a, b []int) []int {
	in := make(map[int]struct{}, len(b))
	for _, id := range b {
		in[id] = struct{}{}
	}
	out := []int{}
	for _, id := range a {
		if _, ok := in[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
