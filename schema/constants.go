package schema

// Custom string types for type safety.
type (
	// ScoreBucketColor represents the color bucket of a final score.
	ScoreBucketColor string

	// CollaboratorStatus represents the status bucket of a collaborator.
	CollaboratorStatus string

	// PerformanceBand represents a performance band filter.
	PerformanceBand string

	// SortOrder represents the ordering of a collaborator listing.
	SortOrder string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for snapshot tracking.
	DatabaseBackend string

	// BandLevel represents one axis level of the talent matrix.
	BandLevel string
)

// Final score color buckets.
const (
	GreenBucket  ScoreBucketColor = "green"  // finalScore >= 4.5
	TealBucket   ScoreBucketColor = "teal"   // finalScore >= 3.5
	YellowBucket ScoreBucketColor = "yellow" // everything else, including unscored
)

// Collaborator status buckets.
const (
	HighStatus   CollaboratorStatus = "high"   // finalScore >= 4.0
	MediumStatus CollaboratorStatus = "medium" // finalScore >= 3.5, and unscored
	LowStatus    CollaboratorStatus = "low"    // everything else
)

// Performance band filters. AllBands is the wildcard.
const (
	HighBand   PerformanceBand = "high"   // finalScore >= 4.0
	MediumBand PerformanceBand = "medium" // 3.5 <= finalScore < 4.0
	LowBand    PerformanceBand = "low"    // finalScore < 3.5
	AllBands   PerformanceBand = "all"
)

// Sort orders for collaborator listings.
const (
	AlphabeticalOrder SortOrder = "alphabetical"
	HighestScoreOrder SortOrder = "highest_score"
	LowestScoreOrder  SortOrder = "lowest_score"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All snapshot backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Talent matrix axis levels.
const (
	LowLevel    BandLevel = "low"
	MediumLevel BandLevel = "medium"
	HighLevel   BandLevel = "high"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidSortOrders lists all valid sort orders.
var ValidSortOrders = map[SortOrder]struct{}{
	AlphabeticalOrder: {},
	HighestScoreOrder: {},
	LowestScoreOrder:  {},
}

// ValidPerformanceBands lists all valid performance band filters.
var ValidPerformanceBands = map[PerformanceBand]struct{}{
	HighBand:   {},
	MediumBand: {},
	LowBand:    {},
	AllBands:   {},
}

// ValidDatabaseBackends lists all valid snapshot backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// MatrixCell is one of the nine fixed cells of the talent matrix. X is the
// performance axis and Y the potential axis, both 0-2 from low to high.
type MatrixCell struct {
	ID          int       `json:"id"`
	Label       string    `json:"label"`
	Color       string    `json:"color"`
	Performance BandLevel `json:"performance"`
	Potential   BandLevel `json:"potential"`
	X           int       `json:"x"`
	Y           int       `json:"y"`
}

// MatrixCells is the static 9-box configuration. Cell ids follow reading
// order from bottom-left (low/low) to top-right (high/high). Never mutated
// at runtime.
var MatrixCells = [9]MatrixCell{
	{ID: 1, Label: "Insuficiente", Color: "#e74c3c", Performance: LowLevel, Potential: LowLevel, X: 0, Y: 0},
	{ID: 2, Label: "Eficaz", Color: "#e67e22", Performance: MediumLevel, Potential: LowLevel, X: 1, Y: 0},
	{ID: 3, Label: "Comprometido", Color: "#f1c40f", Performance: HighLevel, Potential: LowLevel, X: 2, Y: 0},
	{ID: 4, Label: "Questionável", Color: "#e67e22", Performance: LowLevel, Potential: MediumLevel, X: 0, Y: 1},
	{ID: 5, Label: "Mantenedor", Color: "#f1c40f", Performance: MediumLevel, Potential: MediumLevel, X: 1, Y: 1},
	{ID: 6, Label: "Forte desempenho", Color: "#2ecc71", Performance: HighLevel, Potential: MediumLevel, X: 2, Y: 1},
	{ID: 7, Label: "Enigma", Color: "#f1c40f", Performance: LowLevel, Potential: HighLevel, X: 0, Y: 2},
	{ID: 8, Label: "Forte potencial", Color: "#2ecc71", Performance: MediumLevel, Potential: HighLevel, X: 1, Y: 2},
	{ID: 9, Label: "Estrela", Color: "#27ae60", Performance: HighLevel, Potential: HighLevel, X: 2, Y: 2},
}

// CellByID returns the matrix cell for the given id (1-9), or false when the
// id is outside the grid.
func CellByID(id int) (MatrixCell, bool) {
	if id < 1 || id > 9 {
		return MatrixCell{}, false
	}
	return MatrixCells[id-1], true
}

// CellByLabel returns the matrix cell with the given label, or false when no
// cell carries it.
func CellByLabel(label string) (MatrixCell, bool) {
	for _, cell := range MatrixCells {
		if cell.Label == label {
			return cell, true
		}
	}
	return MatrixCell{}, false
}

// Composition weights. The manager-present split is self/manager/360; when
// the manager score is absent its weight is redistributed to self and 360.
const (
	WeightSelfWithManager = 0.2
	WeightManager         = 0.5
	Weight360WithManager  = 0.3

	WeightSelfNoManager = 0.4
	Weight360NoManager  = 0.6
)

// Assessment submission states surfaced as status badges.
const (
	FinalizedState = "finalized"
	PendingState   = "pending"
	DraftState     = "draft"
)
