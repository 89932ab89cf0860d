package wellness

import (
	"errors"
	"strings"
)

var ErrInvalidPeriod = errors.New("invalid period")

type Period string

const (
	PeriodDay   Period = "Day"
	PeriodWeek  Period = "Week"
	PeriodMonth Period = "Month"
)

// DefaultPeriod es la pestaña seleccionada al abrir el dashboard.
const DefaultPeriod = PeriodWeek

// ParsePeriod acepta mayúsculas/minúsculas; vacío devuelve DefaultPeriod.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultPeriod, nil
	case "day":
		return PeriodDay, nil
	case "week":
		return PeriodWeek, nil
	case "month":
		return PeriodMonth, nil
	default:
		return "", ErrInvalidPeriod
	}
}

// PeriodStrategy ajusta el score base a una ventana de tiempo.
// OffsetStrategy es una simulación para la UI.
type PeriodStrategy interface {
	Adjust(base int, p Period) int
}

// OffsetStrategy aplica un corrimiento fijo por período.
type OffsetStrategy struct{}

func (OffsetStrategy) Adjust(base int, p Period) int {
	switch p {
	case PeriodWeek:
		return clamp(base + 2)
	case PeriodMonth:
		return clamp(base - 3)
	default:
		return clamp(base)
	}
}

// StrategyFunc adapta una función a PeriodStrategy.
type StrategyFunc func(base int, p Period) int

func (f StrategyFunc) Adjust(base int, p Period) int { return f(base, p) }

func clamp(v int) int {
	switch {
	case v < 0:
		return 0
	case v > MaxScore:
		return MaxScore
	default:
		return v
	}
}
