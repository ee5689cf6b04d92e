package service

import (
	"fmt"

	"saudade-match/internal/domain"
)

// CompatibilityService calcula la compatibilidad de saudade entre dos perfiles.
// Es puro: no hace I/O ni guarda estado entre llamadas.
type CompatibilityService struct {
	weights CompatibilityWeights
}

// DefaultCompatibilityService permite uso directo sin instanciar.
var DefaultCompatibilityService = NewCompatibilityService()

func NewCompatibilityService() CompatibilityService {
	return CompatibilityService{weights: CanonicalWeights}
}

// Weights expone el vector de pesos aplicado.
func (s CompatibilityService) Weights() CompatibilityWeights {
	return s.weights
}

// Compute valida, normaliza y puntúa el par de perfiles.
// Sólo devuelve error de validación (ErrInvalidProfile, domain.ErrInvalidLocale).
func (s CompatibilityService) Compute(a, b domain.CulturalDepthProfile, locale domain.Locale) (domain.SaudadeCompatibilityResult, error) {
	if !locale.Valid() {
		return domain.SaudadeCompatibilityResult{}, fmt.Errorf("%w: %q", domain.ErrInvalidLocale, locale)
	}
	if err := ValidateProfile(a); err != nil {
		return domain.SaudadeCompatibilityResult{}, fmt.Errorf("profile a: %w", err)
	}
	if err := ValidateProfile(b); err != nil {
		return domain.SaudadeCompatibilityResult{}, fmt.Errorf("profile b: %w", err)
	}
	return s.score(NormalizeProfile(a), NormalizeProfile(b), locale), nil
}

func (s CompatibilityService) score(a, b domain.CulturalDepthProfile, locale domain.Locale) domain.SaudadeCompatibilityResult {
	sa, sb := a.SaudadeProfile, b.SaudadeProfile

	dims := DimensionScores{
		SaudadeAlignment:      ValueDifferenceScore(float64(sa.SaudadeIntensity), float64(sb.SaudadeIntensity), IntensityDiffScale),
		CulturalDepth:         ValueDifferenceScore(a.OverallCulturalDepth, b.OverallCulturalDepth, CulturalDepthDiffScale),
		HeritageAlignment:     ValueDifferenceScore(float64(sa.HeritagePreservation), float64(sb.HeritagePreservation), HeritageDiffScale),
		TriggerCompatibility:  SetOverlapScore(sa.Triggers, sb.Triggers),
		CopingAlignment:       SetOverlapScore(sa.CopingMechanisms, sb.CopingMechanisms),
		RegionalCompatibility: RegionalCompatibilityScore(sa.RegionalIdentity.Region, sb.RegionalIdentity.Region),
	}
	emotional := EmotionalSupportScore(sa, sb)
	healing := HealingCompatibilityScore(sa, sb)
	connection := EmotionalConnectionScore(dims.SaudadeAlignment, emotional, healing)

	connectionType := ClassifyConnection(ClassificationInput{
		A:                    sa,
		B:                    sb,
		SaudadeAlignment:     dims.SaudadeAlignment,
		TriggerCompatibility: dims.TriggerCompatibility,
		EmotionalSupport:     emotional,
		CopingAlignment:      dims.CopingAlignment,
		HeritageAlignment:    dims.HeritageAlignment,
		CulturalDepth:        dims.CulturalDepth,
	})

	return domain.SaudadeCompatibilityResult{
		CompatibilityScore:    s.weights.Aggregate(dims),
		SaudadeAlignment:      dims.SaudadeAlignment,
		CulturalDepth:         dims.CulturalDepth,
		HeritageAlignment:     dims.HeritageAlignment,
		TriggerCompatibility:  dims.TriggerCompatibility,
		CopingAlignment:       dims.CopingAlignment,
		RegionalCompatibility: dims.RegionalCompatibility,
		EmotionalSupport:      emotional,
		FamilyAlignment:       ValueDifferenceScore(float64(a.FamilyValuesImportance), float64(b.FamilyValuesImportance), FamilyDiffScale),
		EmotionalConnection:   connection,
		SharedElements: domain.SharedElements{
			Triggers:           Intersect(sa.Triggers, sb.Triggers),
			CopingMechanisms:   Intersect(sa.CopingMechanisms, sb.CopingMechanisms),
			CulturalActivities: Intersect(sa.CulturalHealingActivities, sb.CulturalHealingActivities),
		},
		RecommendedActivities: RecommendedActivities(sa, sb, locale),
		SupportStrengths:      SupportStrengths(sa, sb, locale),
		PotentialChallenges:   PotentialChallenges(sa, sb, locale),
		ConnectionType:        connectionType,
		ConnectionLabel:       ConnectionLabel(connectionType, locale),
		Conversation:          PredictConversation(a, b, connection, locale),
		Locale:                locale,
	}
}
