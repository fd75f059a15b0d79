package entity

// Plan is one entry in the fixed subscription plan table. PeriodDays is the
// billing period length; zero means a one-time lifetime purchase with no
// recurring billing.
type Plan struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	PeriodDays int      `json:"period_days"`
	Features   []string `json:"features"`
}

// plans is the fixed plan table. Plans are static; there is no plan CRUD.
var plans = map[string]*Plan{
	"free": {
		ID: "free", Name: "Free", Price: 0, PeriodDays: 30,
		Features: []string{"basic_listings", "job_board"},
	},
	"starter": {
		ID: "starter", Name: "Starter", Price: 4.99, PeriodDays: 30,
		Features: []string{"basic_listings", "job_board", "cargo_manifests"},
	},
	"premium": {
		ID: "premium", Name: "Premium", Price: 9.99, PeriodDays: 30,
		Features: []string{"basic_listings", "job_board", "cargo_manifests", "black_market", "trade_routes"},
	},
	"enterprise": {
		ID: "enterprise", Name: "Enterprise", Price: 49.99, PeriodDays: 30,
		Features: []string{"basic_listings", "job_board", "cargo_manifests", "black_market", "trade_routes", "smuggling_runs", "revenue_reports"},
	},
	"lifetime": {
		ID: "lifetime", Name: "Lifetime", Price: 299.00, PeriodDays: 0,
		Features: []string{"basic_listings", "job_board", "cargo_manifests", "black_market", "trade_routes", "smuggling_runs", "revenue_reports"},
	},
}

// planOrder keeps listing output stable.
var planOrder = []string{"free", "starter", "premium", "enterprise", "lifetime"}

// PlanByID looks up a plan in the fixed table.
func PlanByID(id string) (*Plan, bool) {
	plan, ok := plans[id]

	return plan, ok
}

// Plans returns the fixed plan table in a stable order.
func Plans() []*Plan {
	out := make([]*Plan, 0, len(planOrder))
	for _, id := range planOrder {
		out = append(out, plans[id])
	}

	return out
}
