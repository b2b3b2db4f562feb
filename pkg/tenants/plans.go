package tenants

// Unlimited marks a plan quota without an upper bound.
const Unlimited = -1

// PlanTerms describes the pricing and quotas of a subscription plan.
type PlanTerms struct {
	Plan         Plan  `json:"plan" yaml:"plan"`
	MonthlyPrice int64 `json:"monthly_price" yaml:"monthly_price"`
	ChatLimit    int   `json:"chat_limit" yaml:"chat_limit"`
	ImageLimit   int   `json:"image_limit" yaml:"image_limit"`
	WASessions   int   `json:"wa_sessions" yaml:"wa_sessions"`
}

var catalog = []PlanTerms{
	{Plan: PlanStarter, MonthlyPrice: 299000, ChatLimit: 500, ImageLimit: 0, WASessions: 1},
	{Plan: PlanProfessional, MonthlyPrice: 599000, ChatLimit: 2000, ImageLimit: 50, WASessions: 1},
	{Plan: PlanBusiness, MonthlyPrice: 999000, ChatLimit: Unlimited, ImageLimit: 200, WASessions: 3},
}

// Catalog returns the plan terms in tier order.
func Catalog() []PlanTerms {
	return append([]PlanTerms(nil), catalog...)
}

// TermsFor returns the terms for a plan.
func TermsFor(plan Plan) (PlanTerms, bool) {
	for _, terms := range catalog {
		if terms.Plan == plan {
			return terms, true
		}
	}
	return PlanTerms{}, false
}

// UnlimitedChats reports whether the plan has no chat cap.
func (t PlanTerms) UnlimitedChats() bool {
	return t.ChatLimit == Unlimited
}
