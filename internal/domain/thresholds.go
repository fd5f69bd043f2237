package domain

// Thresholds groups the eligibility knobs the candidate finders apply.
// Defaults are merged with per-company overrides at generation time; the
// merged struct travels with every candidate so the rationale shown to the
// user always reflects the thresholds that actually selected it.
type Thresholds struct {
	Graduation GraduationThresholds `json:"graduation"`
	Negative   NegativeThresholds   `json:"negative"`
	Budget     BudgetThresholds     `json:"budget"`
}

type GraduationThresholds struct {
	MaxAcos        float64 `json:"max_acos"`
	MinConversions int64   `json:"min_conversions"`
	MinSpend       float64 `json:"min_spend"`
}

type NegativeThresholds struct {
	MinSpend  float64 `json:"min_spend"`
	MaxOrders int64   `json:"max_orders"`
	MinClicks int64   `json:"min_clicks"`
}

type BudgetThresholds struct {
	MinRoas            float64 `json:"min_roas"`
	BudgetUtilization  float64 `json:"budget_utilization"`
	MaxAcosForIncrease float64 `json:"max_acos_for_increase"`
	MinAcosForDecrease float64 `json:"min_acos_for_decrease"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		Graduation: GraduationThresholds{
			MaxAcos:        0.25,
			MinConversions: 5,
			MinSpend:       50,
		},
		Negative: NegativeThresholds{
			MinSpend:  25,
			MaxOrders: 0,
			MinClicks: 50,
		},
		Budget: BudgetThresholds{
			MinRoas:            1.5,
			BudgetUtilization:  0.95,
			MaxAcosForIncrease: 0.25,
			MinAcosForDecrease: 0.35,
		},
	}
}

// ThresholdOverrides is the shape stored in the company settings blob.
// Every field is independently optional; nil means "keep the default".
type ThresholdOverrides struct {
	Graduation *GraduationOverrides `json:"graduation,omitempty"`
	Negative   *NegativeOverrides   `json:"negative,omitempty"`
	Budget     *BudgetOverrides     `json:"budget,omitempty"`
}

type GraduationOverrides struct {
	MaxAcos        *float64 `json:"max_acos,omitempty"`
	MinConversions *int64   `json:"min_conversions,omitempty"`
	MinSpend       *float64 `json:"min_spend,omitempty"`
}

type NegativeOverrides struct {
	MinSpend  *float64 `json:"min_spend,omitempty"`
	MaxOrders *int64   `json:"max_orders,omitempty"`
	MinClicks *int64   `json:"min_clicks,omitempty"`
}

type BudgetOverrides struct {
	MinRoas            *float64 `json:"min_roas,omitempty"`
	BudgetUtilization  *float64 `json:"budget_utilization,omitempty"`
	MaxAcosForIncrease *float64 `json:"max_acos_for_increase,omitempty"`
	MinAcosForDecrease *float64 `json:"min_acos_for_decrease,omitempty"`
}

// Merge returns a copy of t with every set override applied.
func (t Thresholds) Merge(o *ThresholdOverrides) Thresholds {
	if o == nil {
		return t
	}
	if g := o.Graduation; g != nil {
		if g.MaxAcos != nil {
			t.Graduation.MaxAcos = *g.MaxAcos
		}
		if g.MinConversions != nil {
			t.Graduation.MinConversions = *g.MinConversions
		}
		if g.MinSpend != nil {
			t.Graduation.MinSpend = *g.MinSpend
		}
	}
	if n := o.Negative; n != nil {
		if n.MinSpend != nil {
			t.Negative.MinSpend = *n.MinSpend
		}
		if n.MaxOrders != nil {
			t.Negative.MaxOrders = *n.MaxOrders
		}
		if n.MinClicks != nil {
			t.Negative.MinClicks = *n.MinClicks
		}
	}
	if b := o.Budget; b != nil {
		if b.MinRoas != nil {
			t.Budget.MinRoas = *b.MinRoas
		}
		if b.BudgetUtilization != nil {
			t.Budget.BudgetUtilization = *b.BudgetUtilization
		}
		if b.MaxAcosForIncrease != nil {
			t.Budget.MaxAcosForIncrease = *b.MaxAcosForIncrease
		}
		if b.MinAcosForDecrease != nil {
			t.Budget.MinAcosForDecrease = *b.MinAcosForDecrease
		}
	}
	return t
}
