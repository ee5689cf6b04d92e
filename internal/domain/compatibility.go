package domain

import "time"

// ConnectionType resume la naturaleza cualitativa de una pareja compatible.
type ConnectionType string

const (
	ConnectionSaudadeSoulmate    ConnectionType = "saudade_soulmate"
	ConnectionCulturalHealer     ConnectionType = "cultural_healer"
	ConnectionHeritageGuardian   ConnectionType = "heritage_guardian"
	ConnectionIntegrationPartner ConnectionType = "integration_partner"
	ConnectionGentleCompanion    ConnectionType = "gentle_companion"
)

// ConnectionTypes lista las etiquetas en orden de evaluación.
var ConnectionTypes = []ConnectionType{
	ConnectionSaudadeSoulmate,
	ConnectionCulturalHealer,
	ConnectionHeritageGuardian,
	ConnectionIntegrationPartner,
	ConnectionGentleCompanion,
}

// SharedElements son las intersecciones entre los conjuntos de ambos perfiles.
type SharedElements struct {
	Triggers           []string `json:"triggers" yaml:"triggers"`
	CopingMechanisms   []string `json:"coping_mechanisms" yaml:"coping_mechanisms"`
	CulturalActivities []string `json:"cultural_activities" yaml:"cultural_activities"`
}

// ConversationPrediction estima la calidad de una primera conversación.
type ConversationPrediction struct {
	Topics               []string `json:"topics" yaml:"topics"`
	QualityScore         int      `json:"quality_score" yaml:"quality_score"`
	EngagementPrediction int      `json:"engagement_prediction" yaml:"engagement_prediction"`
	CulturalDepth        int      `json:"cultural_depth" yaml:"cultural_depth"`
	EmotionalConnection  int      `json:"emotional_connection" yaml:"emotional_connection"`
	RecommendedApproach  string   `json:"recommended_approach" yaml:"recommended_approach"`
}

// SaudadeCompatibilityResult es la salida de una comparación entre dos perfiles.
// Todos los sub-scores están en [0,100].
type SaudadeCompatibilityResult struct {
	CompatibilityScore    int                    `json:"compatibility_score" yaml:"compatibility_score"`
	SaudadeAlignment      float64                `json:"saudade_alignment" yaml:"saudade_alignment"`
	CulturalDepth         float64                `json:"cultural_depth" yaml:"cultural_depth"`
	HeritageAlignment     float64                `json:"heritage_alignment" yaml:"heritage_alignment"`
	TriggerCompatibility  float64                `json:"trigger_compatibility" yaml:"trigger_compatibility"`
	CopingAlignment       float64                `json:"coping_alignment" yaml:"coping_alignment"`
	RegionalCompatibility float64                `json:"regional_compatibility" yaml:"regional_compatibility"`
	EmotionalSupport      float64                `json:"emotional_support" yaml:"emotional_support"`
	FamilyAlignment       float64                `json:"family_alignment" yaml:"family_alignment"`
	EmotionalConnection   float64                `json:"emotional_connection" yaml:"emotional_connection"`
	SharedElements        SharedElements         `json:"shared_elements" yaml:"shared_elements"`
	RecommendedActivities []string               `json:"recommended_activities" yaml:"recommended_activities"`
	SupportStrengths      []string               `json:"support_strengths" yaml:"support_strengths"`
	PotentialChallenges   []string               `json:"potential_challenges" yaml:"potential_challenges"`
	ConnectionType        ConnectionType         `json:"connection_type" yaml:"connection_type"`
	ConnectionLabel       string                 `json:"connection_label" yaml:"connection_label"`
	Conversation          ConversationPrediction `json:"conversation" yaml:"conversation"`
	Locale                Locale                 `json:"locale" yaml:"locale"`
}

// MatchResult es un resultado persistido para un par usuario/candidato.
type MatchResult struct {
	ID              string                     `json:"id" yaml:"id"`
	UserID          string                     `json:"user_id" yaml:"user_id"`
	CandidateUserID string                     `json:"candidate_user_id" yaml:"candidate_user_id"`
	Result          SaudadeCompatibilityResult `json:"result" yaml:"result"`
	CreatedAt       time.Time                  `json:"created_at" yaml:"created_at"`
}
