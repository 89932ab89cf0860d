package alerts

import "pet-digital-twin/internal/domain/pets"

type Target string

const (
	TargetNone        Target = ""
	TargetStore       Target = "store"
	TargetHealth      Target = "health"
	TargetDiagnostics Target = "diagnostics"
)

// Action es el call-to-action que la vista muestra bajo cada alerta.
type Action struct {
	Target Target `json:"target,omitempty"`
	Label  string `json:"label,omitempty"`
}

func ActionFor(t pets.AlertType) Action {
	switch t {
	case pets.AlertWeight:
		return Action{Target: TargetStore, Label: "VIEW NUTRITION PLAN"}
	case pets.AlertTraumaHistory, pets.AlertOrthopedic:
		return Action{Target: TargetHealth, Label: "CHECK MEDICAL RECORDS"}
	case pets.AlertDermatology:
		return Action{Target: TargetDiagnostics, Label: "START SYMPTOM TRIAGE"}
	case pets.AlertOther:
		return Action{}
	default:
		return Action{}
	}
}

// View es la alerta lista para presentación.
type View struct {
	pets.AlertRecord
	Action *Action `json:"action,omitempty"`
}

func Views(in []pets.AlertRecord) []View {
	out := make([]View, 0, len(in))
	for _, a := range in {
		v := View{AlertRecord: a}
		if act := ActionFor(a.Type); act.Target != TargetNone {
			v.Action = &act
		}
		out = append(out, v)
	}
	return out
}
