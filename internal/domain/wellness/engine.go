package wellness

import (
	"pet-digital-twin/internal/domain/catalog"
	"pet-digital-twin/internal/domain/pets"

	"github.com/shopspring/decimal"
)

type Engine struct {
	strategy PeriodStrategy
}

type Option func(*Engine)

func WithStrategy(s PeriodStrategy) Option {
	return func(e *Engine) {
		if s != nil {
			e.strategy = s
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{strategy: OffsetStrategy{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Factors son los datos que el dashboard muestra junto al score.
type Factors struct {
	// WeightDeltaKg = actual - objetivo, redondeado a 1 decimal solo para mostrar.
	WeightDeltaKg float64          `json:"weight_delta_kg"`
	Overweight    bool             `json:"overweight"`
	OverThreshold bool             `json:"over_threshold"`
	RiskLevel     pets.RiskLevel   `json:"risk_level"`
	Environment   pets.Environment `json:"environment"`
	Diet          DietPlan         `json:"diet"`
}

// DietPlan es la dieta actual estimada por especie y la que propone el motor de nutrición.
type DietPlan struct {
	Current     string `json:"current"`
	Recommended string `json:"recommended"`
}

var (
	turtleDiet = DietPlan{Current: "Pellets + Greens", Recommended: "Royal Canin® Reptile Herbivore (High Fiber)"}
	dogDiet    = DietPlan{Current: "Kibble + Wet Food", Recommended: "Royal Canin® Weight Care (Small Dog)"}
)

func DietFor(species string) DietPlan {
	if catalog.SpeciesGroup(species) == catalog.GroupTurtle {
		return turtleDiet
	}
	return dogDiet
}

type Report struct {
	PetID     string  `json:"pet_id"`
	Period    Period  `json:"period"`
	BaseScore int     `json:"base_score"`
	Score     int     `json:"score"`
	Factors   Factors `json:"factors"`
}

func (e *Engine) Report(p pets.Pet, period Period) Report {
	base := Score(p)
	delta := decimal.NewFromFloat(p.Profile.CurrentWeight).
		Sub(decimal.NewFromFloat(p.Profile.TargetWeight)).
		Round(1)

	return Report{
		PetID:     p.ID,
		Period:    period,
		BaseScore: base,
		Score:     clamp(e.strategy.Adjust(base, period)),
		Factors: Factors{
			WeightDeltaKg: delta.InexactFloat64(),
			Overweight:    p.Profile.CurrentWeight > p.Profile.TargetWeight,
			OverThreshold: OverThreshold(p.Profile),
			RiskLevel:     p.PredictiveInsights.RiskLevel,
			Environment:   p.Biometrics.Environment,
			Diet:          DietFor(p.Profile.Species),
		},
	}
}
