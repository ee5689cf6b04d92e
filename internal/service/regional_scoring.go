package service

import "saudade-match/internal/domain"

// UnknownRegionScore es el valor neutral cuando una región no está en la tabla.
const UnknownRegionScore = 60.0

const (
	regionalDialectWeight = 0.7
	regionalTraitWeight   = 0.3
)

type dialectPair struct {
	a, b domain.DialectFamily
}

// Familias vecinas. Se consulta en ambos sentidos.
var adjacentDialects = map[dialectPair]float64{
	{domain.DialectNorthern, domain.DialectCentral}: 85,
	{domain.DialectCentral, domain.DialectSouthern}: 80,
}

const (
	standardDialectScore = 90.0
	distantDialectScore  = 70.0
)

// DialectFamilyScore es total sobre todas las familias.
func DialectFamilyScore(a, b domain.DialectFamily) float64 {
	if a == b {
		return 100
	}
	if v, ok := adjacentDialects[dialectPair{a, b}]; ok {
		return v
	}
	if v, ok := adjacentDialects[dialectPair{b, a}]; ok {
		return v
	}
	if a == domain.DialectStandard || b == domain.DialectStandard {
		return standardDialectScore
	}
	return distantDialectScore
}

// DialectScore compara dos claves de región.
// Claves idénticas dan 100 aunque no estén en la tabla; si sólo una es desconocida, UnknownRegionScore.
func DialectScore(regionA, regionB string) float64 {
	keyA := domain.CanonicalRegionKey(regionA)
	keyB := domain.CanonicalRegionKey(regionB)
	if keyA == keyB {
		return 100
	}
	infoA, okA := domain.LookupRegion(keyA)
	infoB, okB := domain.LookupRegion(keyB)
	if !okA || !okB {
		return UnknownRegionScore
	}
	return DialectFamilyScore(infoA.Dialect, infoB.Dialect)
}

// RegionalTraitScore mide el solapamiento de rasgos de tabla entre dos regiones.
func RegionalTraitScore(regionA, regionB string) float64 {
	keyA := domain.CanonicalRegionKey(regionA)
	keyB := domain.CanonicalRegionKey(regionB)
	if keyA == keyB {
		return 100
	}
	infoA, okA := domain.LookupRegion(keyA)
	infoB, okB := domain.LookupRegion(keyB)
	if !okA || !okB {
		return UnknownRegionScore
	}
	return SetOverlapScore(infoA.Traits(), infoB.Traits())
}

// RegionalCompatibilityScore es la dimensión regional/dialectal del agregado.
func RegionalCompatibilityScore(regionA, regionB string) float64 {
	keyA := domain.CanonicalRegionKey(regionA)
	keyB := domain.CanonicalRegionKey(regionB)
	if keyA == keyB {
		return 100
	}
	_, okA := domain.LookupRegion(keyA)
	_, okB := domain.LookupRegion(keyB)
	if !okA || !okB {
		return UnknownRegionScore
	}
	return clampScore(DialectScore(keyA, keyB)*regionalDialectWeight +
		RegionalTraitScore(keyA, keyB)*regionalTraitWeight)
}

// sameDialectFamily indica si ambas regiones conocidas comparten familia.
func sameDialectFamily(regionA, regionB string) bool {
	infoA, okA := domain.LookupRegion(regionA)
	infoB, okB := domain.LookupRegion(regionB)
	return okA && okB && infoA.Dialect == infoB.Dialect
}

func knownRegions(regionA, regionB string) bool {
	_, okA := domain.LookupRegion(regionA)
	_, okB := domain.LookupRegion(regionB)
	return okA && okB
}
