package service

import (
	"math"

	"saudade-match/internal/domain"
)

// Constantes de escala para ValueDifferenceScore (puntos perdidos por unidad de diferencia).
const (
	IntensityDiffScale     = 10.0
	CulturalDepthDiffScale = 10.0
	HeritageDiffScale      = 12.0
	FamilyDiffScale        = 8.0
)

// Pesos internos de los scorers combinados.
const (
	emotionalTriggerWeight = 0.6
	emotionalSupportWeight = 0.4

	healingCopingWeight   = 0.6
	healingActivityWeight = 0.4

	connectionAlignmentWeight = 0.4
	connectionEmotionalWeight = 0.35
	connectionHealingWeight   = 0.25
)

// clampScore limita un score a [0,100]; NaN cuenta como 0.
func clampScore(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ValueDifferenceScore = max(0, 100 - |a-b|*k).
// Valores iguales dan 100 y el score baja de forma monótona con la diferencia.
func ValueDifferenceScore(a, b, k float64) float64 {
	return clampScore(100 - math.Abs(a-b)*k)
}

// SetOverlapScore = |A∩B| / max(|A|,|B|) * 100 sobre conjuntos sin duplicados.
// Dos conjuntos vacíos dan 0.
func SetOverlapScore(a, b []string) float64 {
	setA := toSet(a)
	setB := toSet(b)
	denom := len(setA)
	if len(setB) > denom {
		denom = len(setB)
	}
	if denom == 0 {
		return 0
	}
	shared := 0
	for k := range setA {
		if _, ok := setB[k]; ok {
			shared++
		}
	}
	return clampScore(float64(shared) / float64(denom) * 100)
}

// Intersect devuelve los elementos de a presentes en b, en el orden de a y sin repetir.
func Intersect(a, b []string) []string {
	setB := toSet(b)
	seen := make(map[string]struct{}, len(a))
	out := make([]string, 0)
	for _, x := range a {
		if _, ok := setB[x]; !ok {
			continue
		}
		if _, dup := seen[x]; dup {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}

func contains(items []string, target string) bool {
	for _, it := range items {
		if it == target {
			return true
		}
	}
	return false
}

// SupportLevelScore compara niveles de apoyo cultural.
// Mismo nivel 100, high/moderate 80, cualquier otro par 60.
func SupportLevelScore(a, b domain.CulturalSupport) float64 {
	if a == b {
		return 100
	}
	if (a == domain.SupportHigh && b == domain.SupportModerate) ||
		(a == domain.SupportModerate && b == domain.SupportHigh) {
		return 80
	}
	return 60
}

// EmotionalSupportScore mezcla solapamiento de triggers con afinidad de apoyo.
func EmotionalSupportScore(a, b domain.SaudadeProfile) float64 {
	return clampScore(SetOverlapScore(a.Triggers, b.Triggers)*emotionalTriggerWeight +
		SupportLevelScore(a.CulturalSupport, b.CulturalSupport)*emotionalSupportWeight)
}

// HealingCompatibilityScore mezcla mecanismos de afrontamiento y actividades de sanación compartidas.
func HealingCompatibilityScore(a, b domain.SaudadeProfile) float64 {
	return clampScore(SetOverlapScore(a.CopingMechanisms, b.CopingMechanisms)*healingCopingWeight +
		SetOverlapScore(a.CulturalHealingActivities, b.CulturalHealingActivities)*healingActivityWeight)
}

// EmotionalConnectionScore combina alineación de intensidad, apoyo emocional y sanación.
func EmotionalConnectionScore(alignment, emotional, healing float64) float64 {
	return clampScore(alignment*connectionAlignmentWeight +
		emotional*connectionEmotionalWeight +
		healing*connectionHealingWeight)
}
