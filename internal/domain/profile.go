package domain

import "time"

// Frequency indica con qué frecuencia aparece la saudade.
type Frequency string

const (
	FrequencyConstant Frequency = "constant"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencySeasonal Frequency = "seasonal"
	FrequencyRare     Frequency = "rare"
)

// DefaultFrequency se usa cuando el valor recibido no es reconocido.
const DefaultFrequency = FrequencyMonthly

// Valid indica si la frecuencia pertenece al enum.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyConstant, FrequencyWeekly, FrequencyMonthly, FrequencySeasonal, FrequencyRare:
		return true
	default:
		return false
	}
}

// CulturalSupport es el nivel de apoyo cultural que la persona busca.
type CulturalSupport string

const (
	SupportHigh        CulturalSupport = "high"
	SupportModerate    CulturalSupport = "moderate"
	SupportLow         CulturalSupport = "low"
	SupportIndependent CulturalSupport = "independent"
)

// DefaultCulturalSupport es el nivel neutral para valores desconocidos.
const DefaultCulturalSupport = SupportModerate

func (s CulturalSupport) Valid() bool {
	switch s {
	case SupportHigh, SupportModerate, SupportLow, SupportIndependent:
		return true
	default:
		return false
	}
}

// RegionalIdentity describe la región de origen con la que se identifica el usuario.
type RegionalIdentity struct {
	Region          string   `json:"region" yaml:"region" validate:"notblank"`
	Connection      int      `json:"connection" yaml:"connection"` // 1-10
	SpecificAreas   []string `json:"specific_areas,omitempty" yaml:"specific_areas" validate:"dive,notblank"`
	Traditions      []string `json:"traditions,omitempty" yaml:"traditions" validate:"dive,notblank"`
	CulturalMarkers []string `json:"cultural_markers,omitempty" yaml:"cultural_markers" validate:"dive,notblank"`
}

// SaudadeProfile es el perfil emocional de añoranza de una persona.
type SaudadeProfile struct {
	SaudadeIntensity            int              `json:"saudade_intensity" yaml:"saudade_intensity"` // 0-10
	Frequency                   Frequency        `json:"frequency" yaml:"frequency"`
	Triggers                    []string         `json:"triggers" yaml:"triggers" validate:"dive,notblank"`
	CopingMechanisms            []string         `json:"coping_mechanisms" yaml:"coping_mechanisms" validate:"dive,notblank"`
	HomelandConnection          int              `json:"homeland_connection" yaml:"homeland_connection"`                     // 1-10
	LanguageEmotionalAttachment int              `json:"language_emotional_attachment" yaml:"language_emotional_attachment"` // 1-10
	CulturalSupport             CulturalSupport  `json:"cultural_support" yaml:"cultural_support"`
	RegionalIdentity            RegionalIdentity `json:"regional_identity" yaml:"regional_identity"`
	HeritagePreservation        int              `json:"heritage_preservation" yaml:"heritage_preservation"` // 1-10
	IntegrationBalance          int              `json:"integration_balance" yaml:"integration_balance"`     // 1-10, normalmente 10 - heritage
	EmotionalCompatibilityType  string           `json:"emotional_compatibility_type,omitempty" yaml:"emotional_compatibility_type"`
	SupportNeeds                []string         `json:"support_needs,omitempty" yaml:"support_needs" validate:"dive,notblank"`
	CulturalHealingActivities   []string         `json:"cultural_healing_activities,omitempty" yaml:"cultural_healing_activities" validate:"dive,notblank"`
}

// CulturalDepthProfile envuelve el perfil de saudade con atributos culturales más amplios.
// Todos los valores numéricos están en escala 1-10 salvo que se indique otra cosa.
type CulturalDepthProfile struct {
	UserID                       string             `json:"user_id,omitempty" yaml:"user_id"`
	SaudadeProfile               SaudadeProfile     `json:"saudade_profile" yaml:"saudade_profile"`
	RegionalPreferences          []RegionalIdentity `json:"regional_preferences,omitempty" yaml:"regional_preferences" validate:"dive"`
	LusoConnectionStrength       map[string]int     `json:"luso_connection_strength,omitempty" yaml:"luso_connection_strength"` // portugal, brazil, angola...
	TraditionalModernBalance     int                `json:"traditional_modern_balance" yaml:"traditional_modern_balance"`
	CommunityInvolvement         int                `json:"community_involvement" yaml:"community_involvement"`
	FamilyValuesImportance       int                `json:"family_values_importance" yaml:"family_values_importance"`
	LanguageFluency              map[string]int     `json:"language_fluency,omitempty" yaml:"language_fluency"`
	CulturalKnowledge            map[string]int     `json:"cultural_knowledge,omitempty" yaml:"cultural_knowledge"`
	MusicArtConnection           map[string]int     `json:"music_art_connection,omitempty" yaml:"music_art_connection"`
	FoodCookingInvolvement       int                `json:"food_cooking_involvement" yaml:"food_cooking_involvement"`
	SocialCustomsAdherence       int                `json:"social_customs_adherence" yaml:"social_customs_adherence"`
	CommunityLeadership          int                `json:"community_leadership" yaml:"community_leadership"`
	OverallCulturalDepth         float64            `json:"overall_cultural_depth" yaml:"overall_cultural_depth"`
	CompatibilityRecommendations []string           `json:"compatibility_recommendations,omitempty" yaml:"compatibility_recommendations"`
	UpdatedAt                    time.Time          `json:"updated_at,omitempty" yaml:"-"`
}

// AssessmentAnswers son las respuestas crudas del cuestionario de saudade.
// Los punteros nil significan "sin respuesta" y toman el valor por defecto (5).
type AssessmentAnswers struct {
	SaudadeIntensity            *int     `json:"saudade_intensity,omitempty" yaml:"saudade_intensity"`
	HomelandConnection          *int     `json:"homeland_connection,omitempty" yaml:"homeland_connection"`
	LanguageEmotionalAttachment *int     `json:"language_emotional_attachment,omitempty" yaml:"language_emotional_attachment"`
	HeritageBalance             *int     `json:"heritage_balance,omitempty" yaml:"heritage_balance"`
	FrequencyPatterns           []string `json:"frequency_patterns,omitempty" yaml:"frequency_patterns"`
	Triggers                    []string `json:"triggers,omitempty" yaml:"triggers"`
	CopingMechanisms            []string `json:"coping_mechanisms,omitempty" yaml:"coping_mechanisms"`
	SupportNeeds                []string `json:"support_needs,omitempty" yaml:"support_needs"`
	Regions                     []string `json:"regions,omitempty" yaml:"regions"`
}
