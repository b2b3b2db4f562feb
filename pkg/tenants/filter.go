package tenants

import "strings"

// Criteria narrows the tenant list. Zero values match everything.
type Criteria struct {
	Search string `json:"search,omitempty" query:"search"`
	Plan   string `json:"plan,omitempty" query:"plan"`
	Status string `json:"status,omitempty" query:"status"`
}

// View is the filtered tenant list plus aggregates over the matches.
type View struct {
	Records         []Record `json:"records"`
	TotalCount      int      `json:"total_count"`
	ActiveCount     int      `json:"active_count"`
	TotalChatsMonth int      `json:"total_chats_month"`
	TotalMRR        int64    `json:"total_mrr"`
}

// Normalize resolves the criteria into canonical values. Unknown plan or
// status values collapse to All. Search is kept verbatim, whitespace included.
func (c Criteria) Normalize() Criteria {
	out := Criteria{
		Search: c.Search,
		Plan:   All,
		Status: All,
	}
	if plan, ok := ParsePlan(c.Plan); ok {
		out.Plan = string(plan)
	}
	if status, ok := ParseStatus(c.Status); ok {
		out.Status = string(status)
	}
	return out
}

// IsZero reports whether the criteria match every record.
func (c Criteria) IsZero() bool {
	n := c.Normalize()
	return n.Search == "" && n.Plan == All && n.Status == All
}

type matcher struct {
	search string
	plan   Plan
	status Status
}

func newMatcher(c Criteria) matcher {
	m := matcher{search: strings.ToLower(c.Search)}
	if plan, ok := ParsePlan(c.Plan); ok {
		m.plan = plan
	}
	if status, ok := ParseStatus(c.Status); ok {
		m.status = status
	}
	return m
}

func (m matcher) match(r Record) bool {
	if m.search != "" && !strings.Contains(strings.ToLower(r.BusinessName), m.search) {
		return false
	}
	if m.plan != "" && r.Plan != m.plan {
		return false
	}
	if m.status != "" && r.Status != m.status {
		return false
	}
	return true
}

// Filter returns the records matching every criterion, in input order, with
// aggregates computed over the matches only. records is not modified.
func Filter(records []Record, criteria Criteria) View {
	m := newMatcher(criteria)
	view := View{Records: make([]Record, 0, len(records))}
	for _, r := range records {
		if !m.match(r) {
			continue
		}
		view.Records = append(view.Records, r)
		view.TotalCount++
		if r.Active() {
			view.ActiveCount++
		}
		view.TotalChatsMonth += r.ChatsMonth
		view.TotalMRR += r.MRR
	}
	return view
}

// IDs returns the ids of the records in the view, in order.
func (v View) IDs() []int {
	ids := make([]int, len(v.Records))
	for i, r := range v.Records {
		ids[i] = r.ID
	}
	return ids
}
