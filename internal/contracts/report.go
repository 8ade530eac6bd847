package contracts

// Archetype selects the visual form of a report.
type Archetype string

const (
	// ArchetypePie renders one wedge per category with the largest exploded.
	ArchetypePie Archetype = "PIE"
	// ArchetypeCategoricalBar renders one bar per category, y-grid only.
	ArchetypeCategoricalBar Archetype = "CATEGORICAL_BAR"
	// ArchetypeTimeLine renders a connected line over an ordered time axis.
	ArchetypeTimeLine Archetype = "TIME_LINE"
)

// Report is one catalog entry: a named, parameterless aggregation over the
// warehouse. The query must alias its two result columns to x and y; the
// series loader depends on that contract.
type Report struct {
	Name      string    `json:"name"`
	Query     string    `json:"-"`
	XLabel    string    `json:"x_label"`
	YLabel    string    `json:"y_label"`
	Archetype Archetype `json:"archetype"`
}
