package catalog

// ==================== Schema Paths ====================

const (
	CropsSchemaPath         = "configs/schemas/crops.schema.json"
	ProbabilitiesSchemaPath = "configs/schemas/probabilities.schema.json"
)

// ==================== Raw Field Keys ====================

// Keys used by the upstream game-data export
const (
	keyCrop         = "Crop"
	keySeason       = "Season"
	keyType         = "Type"
	keyPerSeason    = "PerSzn"
	keySeed         = "Seed"
	keyBase         = "Base"
	keySilver       = "Silver"
	keyGold         = "Gold"
	keyTillerBase   = "Tiller Base"
	keyTillerSilver = "Tiller Silver"
	keyTillerGold   = "Tiller Gold"
	keyJar          = "Jar"
	keyKeg          = "Keg"
	keyAged         = "Aged"
	keyArtisanJar   = "Artisan Jar"
	keyArtisanKeg   = "Artisan Keg"
	keyArtisanAged  = "Artisan Aged"
	keyFarmingLevel = "Farming level"

	typeMulti = "Multi"
)

// ==================== Error Messages ====================

const (
	ErrMsgReadFileFailed  = "failed to read reference data file %s: %w"
	ErrMsgSchemaFailed    = "schema validation failed for %s: %w"
	ErrMsgNotJSONArray    = "%s is not a JSON array"
	ErrMsgNoCrops         = "no crops defined"
	ErrMsgNoProbabilities = "no probability rows defined"
)

// Format strings used with fmt.Errorf
const (
	ErrFmtCropEmptyName     = "%w: crop at index %d has empty name"
	ErrFmtCropBadSeason     = "%w: crop '%s' has unknown season '%s'"
	ErrFmtCropDuplicate     = "%w: crop '%s' is defined twice for %s"
	ErrFmtCropNegativeSeed  = "%w: crop '%s' has negative seed cost"
	ErrFmtCropBadPerSeason  = "%w: multi-harvest crop '%s' needs a positive PerSzn"
	ErrFmtProbabilityBadRow = "%w: probability row at index %d has an unreadable percentage"
	ErrFmtProbabilityDupe   = "%w: skill level %d is defined twice"
	ErrFmtProbabilityNegLvl = "%w: skill level %d is negative"
	ErrFmtProbabilityBadSum = "%w: skill level %d sums to %.2f"
)

// ==================== Log Messages ====================

const (
	LogMsgReferenceLoaded = "Reference data loaded"
)

// Levenshtein distance limits by name length
const (
	shortNameLen  = 4
	mediumNameLen = 8
)

// maxSuggestions caps "did you mean" results
const maxSuggestions = 3

// probabilityTolerance absorbs float rounding in percentage strings like "91.18%"
const probabilityTolerance = 0.01
