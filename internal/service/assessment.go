package service

import (
	"saudade-match/internal/domain"
)

const (
	defaultAnswerValue     = 5
	defaultRegionKey       = "general"
	defaultRegionalBond    = 8
	defaultFamilyValues    = 8
	defaultEnglishFluency  = 8
	lowSupportNeedsMaxSize = 2
)

// DeriveProfile construye un CulturalDepthProfile a partir de las respuestas del cuestionario.
// El resultado ya sale normalizado.
func DeriveProfile(userID string, answers domain.AssessmentAnswers, locale domain.Locale) domain.CulturalDepthProfile {
	intensity := answerOrDefault(answers.SaudadeIntensity)
	homeland := answerOrDefault(answers.HomelandConnection)
	languageBond := answerOrDefault(answers.LanguageEmotionalAttachment)
	heritage := answerOrDefault(answers.HeritageBalance)

	patterns := NormalizeTags(answers.FrequencyPatterns)
	triggers := NormalizeTags(answers.Triggers)
	coping := NormalizeTags(answers.CopingMechanisms)
	needs := NormalizeTags(answers.SupportNeeds)
	regions := NormalizeTags(answers.Regions)

	frequency := deriveFrequency(patterns)
	support := deriveSupport(needs)

	region := defaultRegionKey
	if len(regions) > 0 {
		region = regions[0]
	}
	regional := domain.RegionalIdentity{
		Region:          region,
		Connection:      defaultRegionalBond,
		SpecificAreas:   []string{},
		Traditions:      []string{},
		CulturalMarkers: []string{},
	}

	saudade := domain.SaudadeProfile{
		SaudadeIntensity:            intensity,
		Frequency:                   frequency,
		Triggers:                    triggers,
		CopingMechanisms:            coping,
		HomelandConnection:          homeland,
		LanguageEmotionalAttachment: languageBond,
		CulturalSupport:             support,
		RegionalIdentity:            regional,
		HeritagePreservation:        heritage,
		IntegrationBalance:          10 - heritage,
		SupportNeeds:                needs,
	}
	saudade.EmotionalCompatibilityType = render(emotionalTypeKey(saudade), locale)
	saudade.CulturalHealingActivities = healingActivityTags(triggers, coping)

	communityInvolvement := 4
	switch support {
	case domain.SupportHigh:
		communityInvolvement = 8
	case domain.SupportModerate:
		communityInvolvement = 6
	}
	leadership := 4
	if support == domain.SupportHigh {
		leadership = 7
	}
	fado := 5
	if contains(triggers, "fado_music") {
		fado = 9
	}
	cooking := 5
	if contains(coping, "cook_portuguese") {
		cooking = 9
	}

	profile := domain.CulturalDepthProfile{
		UserID:              userID,
		SaudadeProfile:      saudade,
		RegionalPreferences: []domain.RegionalIdentity{regional},
		LusoConnectionStrength: map[string]int{
			"portugal":   homeland,
			"brazil":     6,
			"angola":     5,
			"cape_verde": 4,
		},
		TraditionalModernBalance:     heritage,
		CommunityInvolvement:         communityInvolvement,
		FamilyValuesImportance:       defaultFamilyValues,
		LanguageFluency:              map[string]int{"portuguese": languageBond, "english": defaultEnglishFluency},
		CulturalKnowledge:            map[string]int{"traditional": heritage, "modern": 6},
		MusicArtConnection:           map[string]int{"fado": fado, "folk": 6},
		FoodCookingInvolvement:       cooking,
		SocialCustomsAdherence:       heritage,
		CommunityLeadership:          leadership,
		OverallCulturalDepth:         float64(intensity+homeland+languageBond+heritage) / 4,
		CompatibilityRecommendations: renderAll(selfRecommendationKeys(saudade), locale),
	}
	return NormalizeProfile(profile)
}

func answerOrDefault(v *int) int {
	if v == nil {
		return defaultAnswerValue
	}
	return clampInt(*v, minIntensity, maxScale)
}

// deriveFrequency aplica la precedencia: constante, semanal, estacional, rara; monthly si nada aplica.
func deriveFrequency(patterns []string) domain.Frequency {
	switch {
	case contains(patterns, "daily_constant"):
		return domain.FrequencyConstant
	case contains(patterns, "evening_nights") || contains(patterns, "music_triggers"):
		return domain.FrequencyWeekly
	case contains(patterns, "seasonal"):
		return domain.FrequencySeasonal
	case contains(patterns, "rarely"):
		return domain.FrequencyRare
	default:
		return domain.FrequencyMonthly
	}
}

func deriveSupport(needs []string) domain.CulturalSupport {
	switch {
	case contains(needs, "understanding_saudade") || contains(needs, "cultural_healing"):
		return domain.SupportHigh
	case contains(needs, "independence"):
		return domain.SupportIndependent
	case len(needs) <= lowSupportNeedsMaxSize:
		return domain.SupportLow
	default:
		return domain.SupportModerate
	}
}

func emotionalTypeKey(s domain.SaudadeProfile) messageKey {
	switch {
	case s.SaudadeIntensity >= 8 && s.CulturalSupport == domain.SupportHigh:
		return msgEmotionalSaudadeSoul
	case s.HeritagePreservation >= 8 && s.HomelandConnection >= 8:
		return msgEmotionalGuardian
	case s.CulturalSupport == domain.SupportHigh && contains(s.CopingMechanisms, "portuguese_community"):
		return msgEmotionalBridgeBuilder
	case s.SaudadeIntensity >= 6 && s.Frequency == domain.FrequencyWeekly:
		return msgEmotionalNostalgicHeart
	default:
		return msgEmotionalCulturalBalance
	}
}

// healingActivityTags deriva actividades de sanación como tags estables, comparables entre locales.
func healingActivityTags(triggers, coping []string) []string {
	tags := []string{}
	if contains(triggers, "fado_music") || contains(coping, "listen_fado") {
		tags = append(tags, "fado_nights")
	}
	if contains(coping, "cook_portuguese") {
		tags = append(tags, "portuguese_cooking_workshops")
	}
	if contains(triggers, "portuguese_countryside") {
		tags = append(tags, "portugal_like_gardens")
	}
	if contains(coping, "portuguese_community") {
		tags = append(tags, "community_events")
	}
	return tags
}

func selfRecommendationKeys(s domain.SaudadeProfile) []messageKey {
	var keys []messageKey
	if s.SaudadeIntensity >= highIntensityThreshold {
		keys = append(keys, msgSelfSimilarSaudade)
	}
	if s.CulturalSupport == domain.SupportHigh {
		keys = append(keys, msgSelfSharedCulture)
	}
	if s.HeritagePreservation >= highHeritageThreshold {
		keys = append(keys, msgSelfTraditions)
	}
	return keys
}
