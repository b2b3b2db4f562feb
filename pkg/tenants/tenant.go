package tenants

import "strings"

// Plan is the subscription tier of a tenant.
type Plan string

// Status reports whether a tenant is currently serving chats.
type Status string

const (
	PlanStarter      Plan = "Starter"
	PlanProfessional Plan = "Professional"
	PlanBusiness     Plan = "Business"

	StatusActive   Status = "active"
	StatusInactive Status = "inactive"

	// All matches every plan or status.
	All = "all"
)

var knownPlans = []Plan{PlanStarter, PlanProfessional, PlanBusiness}

var knownStatuses = []Status{StatusActive, StatusInactive}

// Plans returns the supported plans in catalog order.
func Plans() []Plan {
	return append([]Plan(nil), knownPlans...)
}

// Statuses returns the supported statuses.
func Statuses() []Status {
	return append([]Status(nil), knownStatuses...)
}

// ParsePlan resolves a plan case-insensitively. Unknown values report false.
func ParsePlan(value string) (Plan, bool) {
	value = strings.TrimSpace(value)
	for _, plan := range knownPlans {
		if strings.EqualFold(string(plan), value) {
			return plan, true
		}
	}
	return "", false
}

// ParseStatus resolves a status case-insensitively. Unknown values report false.
func ParseStatus(value string) (Status, bool) {
	value = strings.TrimSpace(value)
	for _, status := range knownStatuses {
		if strings.EqualFold(string(status), value) {
			return status, true
		}
	}
	return "", false
}

// Record is a single tenant as loaded from the seed. Records are never
// mutated after load.
type Record struct {
	ID           int    `json:"id" yaml:"id"`
	BusinessName string `json:"business_name" yaml:"business_name"`
	Phone        string `json:"phone" yaml:"phone"`
	Plan         Plan   `json:"plan" yaml:"plan"`
	Status       Status `json:"status" yaml:"status"`
	ChatsToday   int    `json:"chats_today" yaml:"chats_today"`
	ChatsMonth   int    `json:"chats_month" yaml:"chats_month"`
	Images       int    `json:"images" yaml:"images"`
	MRR          int64  `json:"mrr" yaml:"mrr"`
}

// Active reports whether the tenant status is active.
func (r Record) Active() bool {
	return r.Status == StatusActive
}
