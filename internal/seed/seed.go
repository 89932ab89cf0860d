package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"pet-digital-twin/internal/domain/pets"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultRegistry []byte

var ErrInvalidSeed = errors.New("invalid seed registry")

type file struct {
	Pets []pets.Pet `yaml:"pets"`
}

// Default carga el registro embebido (Roger y Holly).
func Default() ([]pets.Pet, error) {
	return Parse(defaultRegistry)
}

// Load lee path si viene; si no, usa el registro embebido.
func Load(path string) ([]pets.Pet, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	return Parse(raw)
}

func Parse(raw []byte) ([]pets.Pet, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	for i := range f.Pets {
		for j := range f.Pets[i].PredictiveInsights.Alerts {
			a := &f.Pets[i].PredictiveInsights.Alerts[j]
			a.Type = pets.ParseAlertType(a.Label)
		}
	}
	if err := Validate(f.Pets); err != nil {
		return nil, err
	}
	return f.Pets, nil
}

// Validate revisa lo que el resto del motor da por sentado.
func Validate(list []pets.Pet) error {
	if len(list) == 0 {
		return fmt.Errorf("%w: no pets", ErrInvalidSeed)
	}
	seen := make(map[string]struct{}, len(list))
	for _, p := range list {
		if strings.TrimSpace(p.ID) == "" {
			return fmt.Errorf("%w: pet without id", ErrInvalidSeed)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidSeed, p.ID)
		}
		seen[p.ID] = struct{}{}

		if p.Profile.CurrentWeight < 0 || p.Profile.TargetWeight < 0 {
			return fmt.Errorf("%w: %s: negative weight", ErrInvalidSeed, p.ID)
		}
		if err := p.Biometrics.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidSeed, p.ID, err)
		}
		if !p.PredictiveInsights.RiskLevel.Valid() {
			return fmt.Errorf("%w: %s: risk level %q", ErrInvalidSeed, p.ID, p.PredictiveInsights.RiskLevel)
		}
		if pct := p.Genomics.Breed.Percentage; pct < 0 || pct > 100 {
			return fmt.Errorf("%w: %s: breed percentage %v", ErrInvalidSeed, p.ID, pct)
		}
		alertIDs := make(map[string]struct{}, len(p.PredictiveInsights.Alerts))
		for _, a := range p.PredictiveInsights.Alerts {
			if _, dup := alertIDs[a.ID]; dup {
				return fmt.Errorf("%w: %s: duplicate alert id %q", ErrInvalidSeed, p.ID, a.ID)
			}
			alertIDs[a.ID] = struct{}{}
		}
		for _, m := range p.Genomics.HealthMarkers {
			if !m.Status.Valid() {
				return fmt.Errorf("%w: %s: marker %q status %q", ErrInvalidSeed, p.ID, m.Name, m.Status)
			}
		}
	}
	return nil
}
