package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"saudade-match/internal/domain"
)

var ErrInvalidProfile = errors.New("invalid profile")

const (
	minIntensity = 0
	minScale     = 1
	maxScale     = 10
)

var profileValidator = newProfileValidator()

// newProfileValidator registra notblank: los tags sólo con espacios también son inválidos.
func newProfileValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// ValidateProfile rechaza perfiles estructuralmente incompletos antes de puntuar.
// Los valores numéricos fuera de rango no son error: NormalizeProfile los limita.
func ValidateProfile(p domain.CulturalDepthProfile) error {
	if strings.TrimSpace(p.SaudadeProfile.RegionalIdentity.Region) == "" {
		return fmt.Errorf("%w: saudade_profile.regional_identity.region is required", ErrInvalidProfile)
	}
	if err := profileValidator.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed on %s", ErrInvalidProfile, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return nil
}

// NormalizeProfile devuelve una copia con rangos limitados, enums válidos y tags normalizados.
func NormalizeProfile(p domain.CulturalDepthProfile) domain.CulturalDepthProfile {
	out := p
	out.SaudadeProfile = normalizeSaudade(p.SaudadeProfile)

	if len(p.RegionalPreferences) > 0 {
		out.RegionalPreferences = make([]domain.RegionalIdentity, len(p.RegionalPreferences))
		for i, r := range p.RegionalPreferences {
			out.RegionalPreferences[i] = normalizeRegional(r)
		}
	}

	out.LusoConnectionStrength = clampScaleMap(p.LusoConnectionStrength)
	out.LanguageFluency = clampScaleMap(p.LanguageFluency)
	out.CulturalKnowledge = clampScaleMap(p.CulturalKnowledge)
	out.MusicArtConnection = clampScaleMap(p.MusicArtConnection)

	out.TraditionalModernBalance = clampInt(p.TraditionalModernBalance, minScale, maxScale)
	out.CommunityInvolvement = clampInt(p.CommunityInvolvement, minScale, maxScale)
	out.FamilyValuesImportance = clampInt(p.FamilyValuesImportance, minScale, maxScale)
	out.FoodCookingInvolvement = clampInt(p.FoodCookingInvolvement, minScale, maxScale)
	out.SocialCustomsAdherence = clampInt(p.SocialCustomsAdherence, minScale, maxScale)
	out.CommunityLeadership = clampInt(p.CommunityLeadership, minScale, maxScale)
	out.OverallCulturalDepth = clampFloat(p.OverallCulturalDepth, minScale, maxScale)
	out.CompatibilityRecommendations = append([]string(nil), p.CompatibilityRecommendations...)
	return out
}

func normalizeSaudade(s domain.SaudadeProfile) domain.SaudadeProfile {
	out := s
	out.SaudadeIntensity = clampInt(s.SaudadeIntensity, minIntensity, maxScale)
	out.HomelandConnection = clampInt(s.HomelandConnection, minScale, maxScale)
	out.LanguageEmotionalAttachment = clampInt(s.LanguageEmotionalAttachment, minScale, maxScale)
	out.HeritagePreservation = clampInt(s.HeritagePreservation, minScale, maxScale)
	out.IntegrationBalance = clampInt(s.IntegrationBalance, minScale, maxScale)

	out.Frequency = domain.Frequency(domain.FoldTag(string(s.Frequency)))
	if !out.Frequency.Valid() {
		out.Frequency = domain.DefaultFrequency
	}
	out.CulturalSupport = domain.CulturalSupport(domain.FoldTag(string(s.CulturalSupport)))
	if !out.CulturalSupport.Valid() {
		out.CulturalSupport = domain.DefaultCulturalSupport
	}

	out.Triggers = NormalizeTags(s.Triggers)
	out.CopingMechanisms = NormalizeTags(s.CopingMechanisms)
	out.SupportNeeds = NormalizeTags(s.SupportNeeds)
	out.CulturalHealingActivities = NormalizeTags(s.CulturalHealingActivities)
	out.RegionalIdentity = normalizeRegional(s.RegionalIdentity)
	return out
}

func normalizeRegional(r domain.RegionalIdentity) domain.RegionalIdentity {
	return domain.RegionalIdentity{
		Region:          domain.CanonicalRegionKey(r.Region),
		Connection:      clampInt(r.Connection, minScale, maxScale),
		SpecificAreas:   NormalizeTags(r.SpecificAreas),
		Traditions:      NormalizeTags(r.Traditions),
		CulturalMarkers: NormalizeTags(r.CulturalMarkers),
	}
}

// NormalizeTags pliega mayúsculas/acentos, descarta vacíos y duplicados (conserva el primer orden).
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		n := domain.FoldTag(t)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampScaleMap(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[domain.FoldKey(k)] = clampInt(v, minScale, maxScale)
	}
	return out
}
