package pets

import "strings"

type Environment string

const (
	EnvironmentAquatic     Environment = "Aquatic"
	EnvironmentTerrestrial Environment = "Terrestrial"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

type MarkerStatus string

const (
	MarkerClear   MarkerStatus = "Clear"
	MarkerCarrier MarkerStatus = "Carrier"
	MarkerAtRisk  MarkerStatus = "At Risk"
)

func (s MarkerStatus) Valid() bool {
	switch s {
	case MarkerClear, MarkerCarrier, MarkerAtRisk:
		return true
	}
	return false
}

// AlertType es la variante cerrada que usa la capa de presentación
// para estilos y navegación.
type AlertType string

const (
	AlertWeight        AlertType = "Weight"
	AlertTraumaHistory AlertType = "TraumaHistory"
	AlertOrthopedic    AlertType = "Orthopedic"
	AlertDermatology   AlertType = "Dermatology"
	AlertOther         AlertType = "Other"
)

// ParseAlertType normaliza la etiqueta autoreada ("Trauma History", "weight", ...).
// Cualquier etiqueta desconocida cae en AlertOther.
func ParseAlertType(label string) AlertType {
	k := strings.ToLower(strings.Join(strings.Fields(label), ""))
	switch k {
	case "weight":
		return AlertWeight
	case "traumahistory":
		return AlertTraumaHistory
	case "orthopedic":
		return AlertOrthopedic
	case "dermatology":
		return AlertDermatology
	default:
		return AlertOther
	}
}
