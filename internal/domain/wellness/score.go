package wellness

import "pet-digital-twin/internal/domain/pets"

const (
	MaxScore = 100

	overweightFactor  = 1.1
	overweightPenalty = 10
	mediumRiskPenalty = 15
	highRiskPenalty   = 30
)

// Score es puro y se recalcula en cada lectura; nunca se guarda en la mascota.
func Score(p pets.Pet) int {
	score := MaxScore

	if OverThreshold(p.Profile) {
		score -= overweightPenalty
	}

	switch p.PredictiveInsights.RiskLevel {
	case pets.RiskMedium:
		score -= mediumRiskPenalty
	case pets.RiskHigh:
		score -= highRiskPenalty
	}

	if score < 0 {
		return 0
	}
	return score
}

// OverThreshold: más de 10% por encima del peso objetivo.
func OverThreshold(pr pets.Profile) bool {
	return pr.CurrentWeight > pr.TargetWeight*overweightFactor
}
