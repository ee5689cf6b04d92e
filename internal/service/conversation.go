package service

import (
	"math"

	"saudade-match/internal/domain"
)

const (
	maxConversationTopics = 4

	qualityDepthWeight     = 0.4
	qualityLanguageWeight  = 0.3
	qualityInterestsWeight = 0.3
	engagementFactor       = 0.9
)

// SharedCulturalInterests puntúa música, cocina y comunidad en común (0-100).
func SharedCulturalInterests(a, b domain.CulturalDepthProfile) float64 {
	music := 0.0
	for key, v := range a.MusicArtConnection {
		if v >= 7 && b.MusicArtConnection[key] >= 7 {
			music += 20
		}
	}
	food := float64(min(a.FoodCookingInvolvement, b.FoodCookingInvolvement)) * 10
	community := 15.0
	if absInt(a.CommunityInvolvement-b.CommunityInvolvement) <= 2 {
		community = 30
	}
	return math.Min(100, music+food+community)
}

// PredictConversation estima la calidad de una primera conversación entre dos perfiles normalizados.
// emotionalConnection viene ya calculado por el agregador.
func PredictConversation(a, b domain.CulturalDepthProfile, emotionalConnection float64, locale domain.Locale) domain.ConversationPrediction {
	depth := (a.OverallCulturalDepth + b.OverallCulturalDepth) / 2
	language := float64(min(a.LanguageFluency["portuguese"], b.LanguageFluency["portuguese"])) / 10
	interests := SharedCulturalInterests(a, b)

	quality := clampScore(depth*10*qualityDepthWeight + language*100*qualityLanguageWeight + interests*qualityInterestsWeight)

	return domain.ConversationPrediction{
		Topics:               conversationTopics(a, b, locale),
		QualityScore:         int(math.Round(quality)),
		EngagementPrediction: int(math.Round(quality * engagementFactor)),
		CulturalDepth:        int(math.Round(depth * 10)),
		EmotionalConnection:  int(math.Round(clampScore(emotionalConnection))),
		RecommendedApproach:  render(approachKey(a, b), locale),
	}
}

func conversationTopics(a, b domain.CulturalDepthProfile, locale domain.Locale) []string {
	sa, sb := a.SaudadeProfile, b.SaudadeProfile
	topics := make([]string, 0, maxConversationTopics)

	if sa.SaudadeIntensity >= 6 && sb.SaudadeIntensity >= 6 {
		topics = append(topics, render(msgTopicSaudade, locale))
	}
	if sameRegion(sa, sb) {
		name := sa.RegionalIdentity.Region
		if info, ok := domain.LookupRegion(name); ok {
			name = info.Name(locale)
		}
		topics = append(topics, render(msgTopicRegion, locale, name))
	}
	if a.FoodCookingInvolvement >= 7 && b.FoodCookingInvolvement >= 7 {
		topics = append(topics, render(msgTopicFood, locale))
	}
	if a.MusicArtConnection["fado"] >= 7 && b.MusicArtConnection["fado"] >= 7 {
		topics = append(topics, render(msgTopicFado, locale))
	}
	if a.CommunityInvolvement >= 6 && b.CommunityInvolvement >= 6 {
		topics = append(topics, render(msgTopicCommunity, locale))
	}
	if len(topics) > maxConversationTopics {
		topics = topics[:maxConversationTopics]
	}
	return topics
}

func approachKey(a, b domain.CulturalDepthProfile) messageKey {
	switch {
	case a.SaudadeProfile.SaudadeIntensity >= 8 && b.SaudadeProfile.SaudadeIntensity >= 8:
		return msgApproachEmotional
	case a.CommunityInvolvement >= 8 || b.CommunityInvolvement >= 8:
		return msgApproachCommunity
	case a.OverallCulturalDepth >= 8 && b.OverallCulturalDepth >= 8:
		return msgApproachCultural
	default:
		return msgApproachBalanced
	}
}
