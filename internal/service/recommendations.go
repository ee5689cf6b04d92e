package service

import (
	"saudade-match/internal/domain"
)

const (
	maxRecommendedActivities = 4

	highIntensityThreshold   = 7
	highHeritageThreshold    = 8
	highLanguageThreshold    = 8
	intensityGapThreshold    = 3
	integrationGapThreshold  = 4
	dialectChallengeMaxScore = 80.0
)

// activityKeys recorre los predicados en orden fijo y corta en maxRecommendedActivities.
func activityKeys(a, b domain.SaudadeProfile) []messageKey {
	sharedCoping := Intersect(a.CopingMechanisms, b.CopingMechanisms)
	sharedTriggers := Intersect(a.Triggers, b.Triggers)

	var keys []messageKey
	if contains(sharedCoping, "cook_portuguese") {
		keys = append(keys, msgActivityCookTogether)
	}
	if contains(sharedCoping, "listen_fado") {
		keys = append(keys, msgActivityFadoNights)
	}
	if contains(sharedTriggers, "fado_music") {
		keys = append(keys, msgActivityFadoSession)
	}
	if contains(sharedCoping, "portuguese_community") {
		keys = append(keys, msgActivityCommunityEvents)
	}
	if a.SaudadeIntensity >= highIntensityThreshold && b.SaudadeIntensity >= highIntensityThreshold {
		keys = append(keys, msgActivityEmotionalSupport)
	}
	if sameRegion(a, b) {
		keys = append(keys, msgActivityRegionalTraditions)
	}
	if contains(sharedTriggers, "grandmother_recipes") || contains(sharedTriggers, "childhood_foods") {
		keys = append(keys, msgActivityRecipeExchange)
	}

	if len(keys) > maxRecommendedActivities {
		keys = keys[:maxRecommendedActivities]
	}
	return keys
}

func strengthKeys(a, b domain.SaudadeProfile) []messageKey {
	var keys []messageKey
	if a.SaudadeIntensity >= highIntensityThreshold && b.SaudadeIntensity >= highIntensityThreshold {
		keys = append(keys, msgStrengthDeepSaudade)
	}
	if a.CulturalSupport == domain.SupportHigh && b.CulturalSupport == domain.SupportHigh {
		keys = append(keys, msgStrengthCulturalSupport)
	}
	if a.HeritagePreservation >= highHeritageThreshold && b.HeritagePreservation >= highHeritageThreshold {
		keys = append(keys, msgStrengthPreservation)
	}
	if a.LanguageEmotionalAttachment >= highLanguageThreshold && b.LanguageEmotionalAttachment >= highLanguageThreshold {
		keys = append(keys, msgStrengthLanguageBond)
	}
	if len(Intersect(a.Triggers, b.Triggers)) > 0 {
		keys = append(keys, msgStrengthSharedTriggers)
	}
	if sameDialectFamily(a.RegionalIdentity.Region, b.RegionalIdentity.Region) {
		keys = append(keys, msgStrengthDialect)
	}
	return keys
}

func challengeKeys(a, b domain.SaudadeProfile) []messageKey {
	var keys []messageKey
	if absInt(a.SaudadeIntensity-b.SaudadeIntensity) >= intensityGapThreshold {
		keys = append(keys, msgChallengeIntensity)
	}
	if absInt(a.IntegrationBalance-b.IntegrationBalance) >= integrationGapThreshold {
		keys = append(keys, msgChallengeIntegration)
	}
	if oppositePair(a.CulturalSupport, b.CulturalSupport, domain.SupportIndependent, domain.SupportHigh) {
		keys = append(keys, msgChallengeSupportNeeds)
	}
	if oppositePair(a.Frequency, b.Frequency, domain.FrequencyConstant, domain.FrequencyRare) {
		keys = append(keys, msgChallengeFrequency)
	}
	if knownRegions(a.RegionalIdentity.Region, b.RegionalIdentity.Region) &&
		!sameDialectFamily(a.RegionalIdentity.Region, b.RegionalIdentity.Region) &&
		DialectScore(a.RegionalIdentity.Region, b.RegionalIdentity.Region) < dialectChallengeMaxScore {
		keys = append(keys, msgChallengeDialect)
	}
	return keys
}

// oppositePair indica si {a,b} == {x,y} en cualquier orden.
func oppositePair[T comparable](a, b, x, y T) bool {
	return (a == x && b == y) || (a == y && b == x)
}

func sameRegion(a, b domain.SaudadeProfile) bool {
	return domain.CanonicalRegionKey(a.RegionalIdentity.Region) == domain.CanonicalRegionKey(b.RegionalIdentity.Region)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// RecommendedActivities devuelve hasta 4 actividades para la pareja.
func RecommendedActivities(a, b domain.SaudadeProfile, locale domain.Locale) []string {
	return renderAll(activityKeys(a, b), locale)
}

// SupportStrengths devuelve las fortalezas de apoyo mutuo.
func SupportStrengths(a, b domain.SaudadeProfile, locale domain.Locale) []string {
	return renderAll(strengthKeys(a, b), locale)
}

// PotentialChallenges devuelve los temas a conversar.
func PotentialChallenges(a, b domain.SaudadeProfile, locale domain.Locale) []string {
	return renderAll(challengeKeys(a, b), locale)
}
