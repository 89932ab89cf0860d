package pets

// Pet es el "digital twin" de una mascota: perfil, historial clínico,
// biometría en vivo, insights predictivos y genómica.
// El ID es inmutable una vez cargado el registro.
type Pet struct {
	ID string `json:"id" yaml:"id"`

	Profile        Profile         `json:"profile" yaml:"profile"`
	MedicalHistory []MedicalRecord `json:"medical_history" yaml:"medical_history"` // más reciente primero por convención; no se valida

	Biometrics         Biometrics         `json:"biometrics" yaml:"biometrics"`
	PredictiveInsights PredictiveInsights `json:"predictive_insights" yaml:"predictive_insights"`
	Genomics           Genomics           `json:"genomics" yaml:"genomics"`
}

type Profile struct {
	Name        string `json:"name" yaml:"name"`
	Species     string `json:"species" yaml:"species"` // texto libre: "Scottish Terrier", "Florida Red-Bellied Turtle (...)"
	DateOfBirth string `json:"date_of_birth" yaml:"date_of_birth"`
	Sex         string `json:"sex" yaml:"sex"`
	Microchip   string `json:"microchip" yaml:"microchip"`

	CurrentWeight float64 `json:"current_weight" yaml:"current_weight"` // kg
	TargetWeight  float64 `json:"target_weight" yaml:"target_weight"`   // kg

	BodyConditionScore string `json:"body_condition_score" yaml:"body_condition_score"`
	Clinic             string `json:"clinic" yaml:"clinic"`
	Owner              string `json:"owner" yaml:"owner"`
	Avatar             string `json:"avatar" yaml:"avatar"`
}

// MedicalRecord es un valor inmutable: nunca se edita ni se borra, solo se antepone.
type MedicalRecord struct {
	Date   string `json:"date" yaml:"date"` // ISO (YYYY-MM-DD), no se valida
	Type   string `json:"type" yaml:"type"`
	Note   string `json:"note" yaml:"note"`
	Source string `json:"source" yaml:"source"`
}

// Biometrics es una variante cerrada: exactamente uno de Aquatic/Terrestrial
// está presente, y coincide con Environment.
type Biometrics struct {
	Environment Environment            `json:"environment" yaml:"environment"`
	Aquatic     *AquaticBiometrics     `json:"aquatic,omitempty" yaml:"aquatic,omitempty"`
	Terrestrial *TerrestrialBiometrics `json:"terrestrial,omitempty" yaml:"terrestrial,omitempty"`
}

type AquaticBiometrics struct {
	WaterTemp     string `json:"water_temp" yaml:"water_temp"`
	BaskingTemp   string `json:"basking_temp" yaml:"basking_temp"`
	UVBOutput     string `json:"uvb_output" yaml:"uvb_output"`
	ActivityLevel string `json:"activity_level" yaml:"activity_level"`
}

type TerrestrialBiometrics struct {
	DailySteps    string `json:"daily_steps" yaml:"daily_steps"`
	StepsTarget   string `json:"steps_target" yaml:"steps_target"`
	ActivityLevel string `json:"activity_level" yaml:"activity_level"`
	SleepQuality  string `json:"sleep_quality" yaml:"sleep_quality"`
}

// Validate exige que la variante poblada coincida con Environment y que no haya dos.
func (b Biometrics) Validate() error {
	switch b.Environment {
	case EnvironmentAquatic:
		if b.Aquatic == nil || b.Terrestrial != nil {
			return ErrInvalidBiometrics
		}
	case EnvironmentTerrestrial:
		if b.Terrestrial == nil || b.Aquatic != nil {
			return ErrInvalidBiometrics
		}
	default:
		return ErrInvalidBiometrics
	}
	return nil
}

type PredictiveInsights struct {
	RiskLevel RiskLevel     `json:"risk_level" yaml:"risk_level"`
	Alerts    []AlertRecord `json:"alerts" yaml:"alerts"`
}

// AlertRecord es dato autoreado por snapshot de la mascota.
// Type es la variante cerrada; Label conserva el texto original para mostrar.
type AlertRecord struct {
	ID      string    `json:"id" yaml:"id"`
	Type    AlertType `json:"type" yaml:"-"`
	Label   string    `json:"label" yaml:"type"`
	Message string    `json:"message" yaml:"message"`
}

type Genomics struct {
	Provider      string         `json:"provider" yaml:"provider"`
	Breed         BreedProfile   `json:"breed" yaml:"breed"`
	HealthMarkers []HealthMarker `json:"health_markers" yaml:"health_markers"`
}

type BreedProfile struct {
	Primary    string   `json:"primary" yaml:"primary"`
	Percentage float64  `json:"percentage" yaml:"percentage"` // 0-100
	Confidence string   `json:"confidence" yaml:"confidence"`
	Traits     []string `json:"traits" yaml:"traits"`
}

type HealthMarker struct {
	ID     string       `json:"id" yaml:"id"`
	Name   string       `json:"name" yaml:"name"`
	Status MarkerStatus `json:"status" yaml:"status"`
	Risk   string       `json:"risk" yaml:"risk"`
}

// Clone devuelve una copia profunda; el store nunca entrega slices propios.
func (p Pet) Clone() Pet {
	out := p

	if p.MedicalHistory != nil {
		out.MedicalHistory = append([]MedicalRecord(nil), p.MedicalHistory...)
	}
	if p.Biometrics.Aquatic != nil {
		a := *p.Biometrics.Aquatic
		out.Biometrics.Aquatic = &a
	}
	if p.Biometrics.Terrestrial != nil {
		t := *p.Biometrics.Terrestrial
		out.Biometrics.Terrestrial = &t
	}
	if p.PredictiveInsights.Alerts != nil {
		out.PredictiveInsights.Alerts = append([]AlertRecord(nil), p.PredictiveInsights.Alerts...)
	}
	if p.Genomics.Breed.Traits != nil {
		out.Genomics.Breed.Traits = append([]string(nil), p.Genomics.Breed.Traits...)
	}
	if p.Genomics.HealthMarkers != nil {
		out.Genomics.HealthMarkers = append([]HealthMarker(nil), p.Genomics.HealthMarkers...)
	}
	return out
}
