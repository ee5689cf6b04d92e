package service

import "math"

// CompatibilityWeights define cuánto aporta cada sub-score al score global.
type CompatibilityWeights struct {
	SaudadeAlignment      float64 `json:"saudade_alignment" yaml:"saudade_alignment"`
	CulturalDepth         float64 `json:"cultural_depth" yaml:"cultural_depth"`
	HeritageAlignment     float64 `json:"heritage_alignment" yaml:"heritage_alignment"`
	TriggerCompatibility  float64 `json:"trigger_compatibility" yaml:"trigger_compatibility"`
	CopingAlignment       float64 `json:"coping_alignment" yaml:"coping_alignment"`
	RegionalCompatibility float64 `json:"regional_compatibility" yaml:"regional_compatibility"`
}

// CanonicalWeights es el único vector de pesos usado por el agregador. Suma 1.0.
var CanonicalWeights = CompatibilityWeights{
	SaudadeAlignment:      0.25,
	CulturalDepth:         0.20,
	HeritageAlignment:     0.20,
	TriggerCompatibility:  0.15,
	CopingAlignment:       0.10,
	RegionalCompatibility: 0.10,
}

// Sum devuelve la suma de los pesos.
func (w CompatibilityWeights) Sum() float64 {
	return w.SaudadeAlignment + w.CulturalDepth + w.HeritageAlignment +
		w.TriggerCompatibility + w.CopingAlignment + w.RegionalCompatibility
}

// DimensionScores son los sub-scores que entran al agregado.
type DimensionScores struct {
	SaudadeAlignment      float64
	CulturalDepth         float64
	HeritageAlignment     float64
	TriggerCompatibility  float64
	CopingAlignment       float64
	RegionalCompatibility float64
}

// Aggregate calcula el score global redondeado y limitado a [0,100].
func (w CompatibilityWeights) Aggregate(s DimensionScores) int {
	total := s.SaudadeAlignment*w.SaudadeAlignment +
		s.CulturalDepth*w.CulturalDepth +
		s.HeritageAlignment*w.HeritageAlignment +
		s.TriggerCompatibility*w.TriggerCompatibility +
		s.CopingAlignment*w.CopingAlignment +
		s.RegionalCompatibility*w.RegionalCompatibility
	return int(math.Round(clampScore(total)))
}
