package domain

// DialectFamily agrupa regiones con habla similar.
type DialectFamily string

const (
	DialectNorthern DialectFamily = "northern"
	DialectCentral  DialectFamily = "central"
	DialectSouthern DialectFamily = "southern"
	DialectAzorean  DialectFamily = "azorean"
	DialectMadeiran DialectFamily = "madeiran"
	DialectStandard DialectFamily = "standard"
)

// RegionInfo es una entrada de la tabla fija de regiones.
type RegionInfo struct {
	Key             string
	Dialect         DialectFamily
	Characteristics []string
	Traditions      []string
	Values          []string
	Names           map[Locale]string
}

// Traits devuelve características, tradiciones y valores en un solo slice.
func (r RegionInfo) Traits() []string {
	out := make([]string, 0, len(r.Characteristics)+len(r.Traditions)+len(r.Values))
	out = append(out, r.Characteristics...)
	out = append(out, r.Traditions...)
	out = append(out, r.Values...)
	return out
}

// Name devuelve el nombre visible de la región para el locale.
func (r RegionInfo) Name(locale Locale) string {
	if n, ok := r.Names[locale]; ok {
		return n
	}
	return r.Names[LocaleEnglish]
}

var regions = map[string]RegionInfo{
	"minho": {
		Key:             "minho",
		Dialect:         DialectNorthern,
		Characteristics: []string{"traditional", "family_oriented", "rural_connection"},
		Traditions:      []string{"vinho_verde", "folk_festivals", "pilgrimage"},
		Values:          []string{"family_loyalty", "land_connection", "religious_traditions"},
		Names:           map[Locale]string{LocaleEnglish: "Minho", LocalePortuguese: "Minho"},
	},
	"porto_norte": {
		Key:             "porto_norte",
		Dialect:         DialectNorthern,
		Characteristics: []string{"proud", "industrious", "football_culture"},
		Traditions:      []string{"santos_populares", "francesinha", "river_culture"},
		Values:          []string{"hard_work", "regional_pride", "direct_communication"},
		Names:           map[Locale]string{LocaleEnglish: "Porto and the North", LocalePortuguese: "Porto e Norte"},
	},
	"lisboa_area": {
		Key:             "lisboa_area",
		Dialect:         DialectCentral,
		Characteristics: []string{"cosmopolitan", "cultural", "modern"},
		Traditions:      []string{"fado", "pasteis_belem", "urban_culture"},
		Values:          []string{"education", "arts", "progressive_thinking"},
		Names:           map[Locale]string{LocaleEnglish: "Lisbon area", LocalePortuguese: "Área de Lisboa"},
	},
	"centro_coimbra": {
		Key:             "centro_coimbra",
		Dialect:         DialectCentral,
		Characteristics: []string{"academic", "historical", "intellectual"},
		Traditions:      []string{"university_traditions", "student_culture", "historical_pride"},
		Values:          []string{"education", "tradition", "intellectual_pursuit"},
		Names:           map[Locale]string{LocaleEnglish: "Coimbra and the Centre", LocalePortuguese: "Coimbra e Centro"},
	},
	"alentejo": {
		Key:             "alentejo",
		Dialect:         DialectSouthern,
		Characteristics: []string{"calm", "traditional", "rural"},
		Traditions:      []string{"cork_culture", "countryside_festivals", "slow_living"},
		Values:          []string{"simplicity", "nature_connection", "contemplation"},
		Names:           map[Locale]string{LocaleEnglish: "Alentejo", LocalePortuguese: "Alentejo"},
	},
	"algarve": {
		Key:             "algarve",
		Dialect:         DialectSouthern,
		Characteristics: []string{"coastal", "relaxed", "tourism_aware"},
		Traditions:      []string{"fishing_culture", "beach_festivals", "seafood"},
		Values:          []string{"relaxation", "sea_connection", "hospitality"},
		Names:           map[Locale]string{LocaleEnglish: "Algarve", LocalePortuguese: "Algarve"},
	},
	"acores": {
		Key:             "acores",
		Dialect:         DialectAzorean,
		Characteristics: []string{"island_identity", "close_community", "emigration_culture"},
		Traditions:      []string{"azorean_festivals", "island_traditions", "diaspora_connections"},
		Values:          []string{"community_solidarity", "island_pride", "family_connections"},
		Names:           map[Locale]string{LocaleEnglish: "Azores", LocalePortuguese: "Açores"},
	},
	"madeira": {
		Key:             "madeira",
		Dialect:         DialectMadeiran,
		Characteristics: []string{"island_pride", "unique_culture", "beautiful_landscape"},
		Traditions:      []string{"madeira_wine", "folklore", "island_festivals"},
		Values:          []string{"island_identity", "beauty_appreciation", "cultural_preservation"},
		Names:           map[Locale]string{LocaleEnglish: "Madeira", LocalePortuguese: "Madeira"},
	},
	"general": {
		Key:             "general",
		Dialect:         DialectStandard,
		Characteristics: []string{"portuguese_identity", "mixed_regions", "adaptable"},
		Traditions:      []string{"portuguese_culture", "general_traditions"},
		Values:          []string{"portuguese_pride", "cultural_preservation"},
		Names:           map[Locale]string{LocaleEnglish: "Portugal (general)", LocalePortuguese: "Portugal (geral)"},
	},
}

var regionAliases = map[string]string{
	"lisboa":             "lisboa_area",
	"lisbon":             "lisboa_area",
	"lisboa_centro":      "lisboa_area",
	"porto":              "porto_norte",
	"norte":              "porto_norte",
	"coimbra":            "centro_coimbra",
	"centro":             "centro_coimbra",
	"acores_island":      "acores",
	"azores":             "acores",
	"general_portuguese": "general",
	"portugal":           "general",
}

// CanonicalRegionKey normaliza una clave de región y resuelve alias.
// Claves desconocidas se devuelven normalizadas pero sin resolver.
func CanonicalRegionKey(raw string) string {
	key := FoldKey(raw)
	if alias, ok := regionAliases[key]; ok {
		return alias
	}
	return key
}

// LookupRegion busca una región por clave (acepta alias y acentos).
func LookupRegion(raw string) (RegionInfo, bool) {
	info, ok := regions[CanonicalRegionKey(raw)]
	return info, ok
}

// RegionKeys devuelve las claves canónicas de la tabla.
func RegionKeys() []string {
	return []string{
		"minho", "porto_norte", "lisboa_area", "centro_coimbra",
		"alentejo", "algarve", "acores", "madeira", "general",
	}
}
