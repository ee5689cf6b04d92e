package service

import (
	"fmt"

	"saudade-match/internal/domain"
)

// messageKey identifica un texto del catálogo; las reglas emiten claves, no strings.
type messageKey string

const (
	// actividades recomendadas
	msgActivityCookTogether       messageKey = "activity.cook_together"
	msgActivityFadoNights         messageKey = "activity.fado_nights"
	msgActivityFadoSession        messageKey = "activity.fado_session"
	msgActivityCommunityEvents    messageKey = "activity.community_events"
	msgActivityEmotionalSupport   messageKey = "activity.emotional_support"
	msgActivityRegionalTraditions messageKey = "activity.regional_traditions"
	msgActivityRecipeExchange     messageKey = "activity.recipe_exchange"

	// fortalezas
	msgStrengthDeepSaudade     messageKey = "strength.deep_saudade"
	msgStrengthCulturalSupport messageKey = "strength.cultural_support"
	msgStrengthPreservation    messageKey = "strength.preservation"
	msgStrengthLanguageBond    messageKey = "strength.language_bond"
	msgStrengthSharedTriggers  messageKey = "strength.shared_triggers"
	msgStrengthDialect         messageKey = "strength.dialect"

	// desafíos
	msgChallengeIntensity    messageKey = "challenge.intensity"
	msgChallengeIntegration  messageKey = "challenge.integration"
	msgChallengeSupportNeeds messageKey = "challenge.support_needs"
	msgChallengeFrequency    messageKey = "challenge.frequency"
	msgChallengeDialect      messageKey = "challenge.dialect"

	// tipos de conexión
	msgConnectionSoulmate    messageKey = "connection.saudade_soulmate"
	msgConnectionHealer      messageKey = "connection.cultural_healer"
	msgConnectionGuardian    messageKey = "connection.heritage_guardian"
	msgConnectionIntegration messageKey = "connection.integration_partner"
	msgConnectionCompanion   messageKey = "connection.gentle_companion"

	// tipo emocional derivado del cuestionario
	msgEmotionalSaudadeSoul     messageKey = "emotional.saudade_soul"
	msgEmotionalGuardian        messageKey = "emotional.cultural_guardian"
	msgEmotionalBridgeBuilder   messageKey = "emotional.bridge_builder"
	msgEmotionalNostalgicHeart  messageKey = "emotional.nostalgic_heart"
	msgEmotionalCulturalBalance messageKey = "emotional.cultural_balancer"

	// recomendaciones para el propio perfil
	msgSelfSimilarSaudade messageKey = "self.similar_saudade"
	msgSelfSharedCulture  messageKey = "self.shared_culture"
	msgSelfTraditions     messageKey = "self.traditions"

	// conversación
	msgTopicSaudade      messageKey = "topic.saudade"
	msgTopicRegion       messageKey = "topic.region" // %s = nombre de la región
	msgTopicFood         messageKey = "topic.food"
	msgTopicFado         messageKey = "topic.fado"
	msgTopicCommunity    messageKey = "topic.community"
	msgApproachEmotional messageKey = "approach.emotional"
	msgApproachCommunity messageKey = "approach.community"
	msgApproachCultural  messageKey = "approach.cultural"
	msgApproachBalanced  messageKey = "approach.balanced"
)

type localized map[domain.Locale]string

var messageCatalog = map[messageKey]localized{
	msgActivityCookTogether: {
		domain.LocaleEnglish:    "Cook traditional dishes together",
		domain.LocalePortuguese: "Cozinhar pratos tradicionais juntos",
	},
	msgActivityFadoNights: {
		domain.LocaleEnglish:    "Intimate fado nights to share saudade",
		domain.LocalePortuguese: "Noites de fado íntimas para partilhar saudade",
	},
	msgActivityFadoSession: {
		domain.LocaleEnglish:    "Go to a live fado session together",
		domain.LocalePortuguese: "Ir juntos a uma sessão de fado ao vivo",
	},
	msgActivityCommunityEvents: {
		domain.LocaleEnglish:    "Attend Portuguese-speaking community events together",
		domain.LocalePortuguese: "Participar em eventos comunitários portugueses",
	},
	msgActivityEmotionalSupport: {
		domain.LocaleEnglish:    "Emotional support sessions and mutual understanding",
		domain.LocalePortuguese: "Sessões de apoio emocional e compreensão mútua",
	},
	msgActivityRegionalTraditions: {
		domain.LocaleEnglish:    "Celebrate specific regional traditions",
		domain.LocalePortuguese: "Celebrar tradições regionais específicas",
	},
	msgActivityRecipeExchange: {
		domain.LocaleEnglish:    "Swap family recipes and cook them side by side",
		domain.LocalePortuguese: "Trocar receitas de família e cozinhá-las lado a lado",
	},

	msgStrengthDeepSaudade: {
		domain.LocaleEnglish:    "Deep mutual understanding of saudade",
		domain.LocalePortuguese: "Compreensão profunda da saudade mútua",
	},
	msgStrengthCulturalSupport: {
		domain.LocaleEnglish:    "Both value emotional cultural support",
		domain.LocalePortuguese: "Ambos valorizam apoio cultural emocional",
	},
	msgStrengthPreservation: {
		domain.LocaleEnglish:    "Shared commitment to cultural preservation",
		domain.LocalePortuguese: "Compromisso partilhado com preservação cultural",
	},
	msgStrengthLanguageBond: {
		domain.LocaleEnglish:    "Strong emotional connection to the Portuguese language",
		domain.LocalePortuguese: "Ligação emocional forte ao português",
	},
	msgStrengthSharedTriggers: {
		domain.LocaleEnglish:    "The same memories awaken saudade in both",
		domain.LocalePortuguese: "As mesmas memórias despertam saudade em ambos",
	},
	msgStrengthDialect: {
		domain.LocaleEnglish:    "Same regional dialect family",
		domain.LocalePortuguese: "Mesma família dialetal regional",
	},

	msgChallengeIntensity: {
		domain.LocaleEnglish:    "Different levels of saudade intensity",
		domain.LocalePortuguese: "Diferentes níveis de intensidade de saudade",
	},
	msgChallengeIntegration: {
		domain.LocaleEnglish:    "Different approaches to integration vs heritage",
		domain.LocalePortuguese: "Abordagens diferentes para integração vs herança",
	},
	msgChallengeSupportNeeds: {
		domain.LocaleEnglish:    "Different cultural support needs",
		domain.LocalePortuguese: "Necessidades diferentes de apoio cultural",
	},
	msgChallengeFrequency: {
		domain.LocaleEnglish:    "Very different saudade frequencies",
		domain.LocalePortuguese: "Frequências muito diferentes de saudade",
	},
	msgChallengeDialect: {
		domain.LocaleEnglish:    "Different regional dialects may cause communication nuances",
		domain.LocalePortuguese: "Dialetos regionais diferentes podem trazer nuances na comunicação",
	},

	msgConnectionSoulmate: {
		domain.LocaleEnglish:    "Saudade Soulmate",
		domain.LocalePortuguese: "Alma Gémea de Saudade",
	},
	msgConnectionHealer: {
		domain.LocaleEnglish:    "Cultural Healer",
		domain.LocalePortuguese: "Curador Cultural",
	},
	msgConnectionGuardian: {
		domain.LocaleEnglish:    "Heritage Guardian",
		domain.LocalePortuguese: "Guardião da Herança",
	},
	msgConnectionIntegration: {
		domain.LocaleEnglish:    "Integration Partner",
		domain.LocalePortuguese: "Parceiro de Integração",
	},
	msgConnectionCompanion: {
		domain.LocaleEnglish:    "Gentle Companion",
		domain.LocalePortuguese: "Companheiro Gentil",
	},

	msgEmotionalSaudadeSoul: {
		domain.LocaleEnglish:    "Saudade Soul",
		domain.LocalePortuguese: "Alma Saudosa",
	},
	msgEmotionalGuardian: {
		domain.LocaleEnglish:    "Cultural Guardian",
		domain.LocalePortuguese: "Guardião Cultural",
	},
	msgEmotionalBridgeBuilder: {
		domain.LocaleEnglish:    "Bridge Builder",
		domain.LocalePortuguese: "Construtor de Pontes",
	},
	msgEmotionalNostalgicHeart: {
		domain.LocaleEnglish:    "Nostalgic Heart",
		domain.LocalePortuguese: "Coração Nostálgico",
	},
	msgEmotionalCulturalBalance: {
		domain.LocaleEnglish:    "Cultural Balancer",
		domain.LocalePortuguese: "Equilibrista Cultural",
	},

	msgSelfSimilarSaudade: {
		domain.LocaleEnglish:    "Seek partners with similar saudade for mutual emotional support",
		domain.LocalePortuguese: "Procure parceiros com saudade similar para apoio emocional mútuo",
	},
	msgSelfSharedCulture: {
		domain.LocaleEnglish:    "Ideal for relationships with a strong shared cultural component",
		domain.LocalePortuguese: "Ideal para relacionamentos com forte componente cultural partilhada",
	},
	msgSelfTraditions: {
		domain.LocaleEnglish:    "Compatible with partners who value Portuguese traditions",
		domain.LocalePortuguese: "Compatível com parceiros que valorizam tradições portuguesas",
	},

	msgTopicSaudade: {
		domain.LocaleEnglish:    "Sharing experiences of saudade abroad",
		domain.LocalePortuguese: "Partilhar experiências de saudade no estrangeiro",
	},
	msgTopicRegion: {
		domain.LocaleEnglish:    "Memories and traditions of %s",
		domain.LocalePortuguese: "Memórias e tradições de %s",
	},
	msgTopicFood: {
		domain.LocaleEnglish:    "Portuguese recipes and cooking experiences",
		domain.LocalePortuguese: "Receitas portuguesas e experiências culinárias",
	},
	msgTopicFado: {
		domain.LocaleEnglish:    "Love of fado and Portuguese music",
		domain.LocalePortuguese: "Amor pelo fado e música portuguesa",
	},
	msgTopicCommunity: {
		domain.LocaleEnglish:    "Involvement in the local Portuguese-speaking community",
		domain.LocalePortuguese: "Participação na comunidade local de falantes de português",
	},
	msgApproachEmotional: {
		domain.LocaleEnglish:    "Emotional approach: share saudade and deep memories",
		domain.LocalePortuguese: "Abordagem emotiva: partilhem saudade e memórias profundas",
	},
	msgApproachCommunity: {
		domain.LocaleEnglish:    "Community approach: focus on Portuguese events and traditions",
		domain.LocalePortuguese: "Abordagem comunitária: foquem em eventos e tradições portuguesas",
	},
	msgApproachCultural: {
		domain.LocaleEnglish:    "Cultural approach: explore traditions and heritage together",
		domain.LocalePortuguese: "Abordagem cultural: explorem tradições e herança portuguesa",
	},
	msgApproachBalanced: {
		domain.LocaleEnglish:    "Balanced approach: mix culture, life abroad and aspirations",
		domain.LocalePortuguese: "Abordagem equilibrada: combinem cultura, vida no estrangeiro e aspirações",
	},
}

var connectionMessages = map[domain.ConnectionType]messageKey{
	domain.ConnectionSaudadeSoulmate:    msgConnectionSoulmate,
	domain.ConnectionCulturalHealer:     msgConnectionHealer,
	domain.ConnectionHeritageGuardian:   msgConnectionGuardian,
	domain.ConnectionIntegrationPartner: msgConnectionIntegration,
	domain.ConnectionGentleCompanion:    msgConnectionCompanion,
}

// render traduce una clave al locale pedido. Locales desconocidos caen a inglés.
func render(key messageKey, locale domain.Locale, args ...any) string {
	texts, ok := messageCatalog[key]
	if !ok {
		return string(key)
	}
	text, ok := texts[locale]
	if !ok {
		text = texts[domain.LocaleEnglish]
	}
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}

func renderAll(keys []messageKey, locale domain.Locale) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, render(k, locale))
	}
	return out
}

// ConnectionLabel devuelve la etiqueta visible del tipo de conexión.
func ConnectionLabel(t domain.ConnectionType, locale domain.Locale) string {
	key, ok := connectionMessages[t]
	if !ok {
		key = msgConnectionCompanion
	}
	return render(key, locale)
}
