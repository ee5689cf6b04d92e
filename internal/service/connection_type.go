package service

import "saudade-match/internal/domain"

// Umbrales del clasificador de tipo de conexión.
const (
	soulmateMinIntensity   = 7
	soulmateMinAlignment   = 80.0
	soulmateMinTriggers    = 50.0
	healerMinEmotional     = 70.0
	healerMinCoping        = 50.0
	guardianMinHeritage    = 8
	guardianMinAlignment   = 75.0
	integrationMinBalance  = 6
	integrationMinCultural = 60.0
)

// ClassificationInput agrupa lo que mira el clasificador.
type ClassificationInput struct {
	A, B                 domain.SaudadeProfile
	SaudadeAlignment     float64
	TriggerCompatibility float64
	EmotionalSupport     float64
	CopingAlignment      float64
	HeritageAlignment    float64
	CulturalDepth        float64
}

type connectionRule struct {
	label domain.ConnectionType
	match func(in ClassificationInput) bool
}

// El orden importa: gana la primera regla que aplica.
var connectionRules = []connectionRule{
	{
		label: domain.ConnectionSaudadeSoulmate,
		match: func(in ClassificationInput) bool {
			return in.A.SaudadeIntensity >= soulmateMinIntensity &&
				in.B.SaudadeIntensity >= soulmateMinIntensity &&
				in.SaudadeAlignment >= soulmateMinAlignment &&
				in.TriggerCompatibility >= soulmateMinTriggers
		},
	},
	{
		label: domain.ConnectionCulturalHealer,
		match: func(in ClassificationInput) bool {
			return (in.A.CulturalSupport == domain.SupportHigh || in.B.CulturalSupport == domain.SupportHigh) &&
				in.EmotionalSupport >= healerMinEmotional &&
				in.CopingAlignment >= healerMinCoping
		},
	},
	{
		label: domain.ConnectionHeritageGuardian,
		match: func(in ClassificationInput) bool {
			return in.A.HeritagePreservation >= guardianMinHeritage &&
				in.B.HeritagePreservation >= guardianMinHeritage &&
				in.HeritageAlignment >= guardianMinAlignment
		},
	},
	{
		label: domain.ConnectionIntegrationPartner,
		match: func(in ClassificationInput) bool {
			return in.A.IntegrationBalance >= integrationMinBalance &&
				in.B.IntegrationBalance >= integrationMinBalance &&
				in.CulturalDepth >= integrationMinCultural
		},
	},
}

// ClassifyConnection asigna exactamente una etiqueta; gentle_companion si ninguna regla aplica.
func ClassifyConnection(in ClassificationInput) domain.ConnectionType {
	for _, rule := range connectionRules {
		if rule.match(in) {
			return rule.label
		}
	}
	return domain.ConnectionGentleCompanion
}
