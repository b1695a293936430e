package report

// ChartKind tags how the renderer should draw a result table.
type ChartKind string

const (
	KindLine       ChartKind = "line"
	KindBar        ChartKind = "bar"
	KindHistogram  ChartKind = "histogram"
	KindScatter    ChartKind = "scatter"
	KindScatterGeo ChartKind = "scatter_geo"
)

// ChartSpec is the declarative contract handed to the chart renderer together
// with a result table: chart kind plus column bindings. A non-empty Y2 marks a
// dual-axis chart whose secondary series is drawn as bars behind the Y line.
type ChartSpec struct {
	Kind  ChartKind `json:"kind"`
	Title string    `json:"title"`
	X     string    `json:"x,omitempty"`
	Y     string    `json:"y,omitempty"`
	Y2    string    `json:"y2,omitempty"`
	Color string    `json:"color,omitempty"`
	Size  string    `json:"size,omitempty"`
	Hover string    `json:"hover,omitempty"`
	Lat   string    `json:"lat,omitempty"`
	Lon   string    `json:"lon,omitempty"`
	Bins  int       `json:"bins,omitempty"`
}

// Chart pairs one derivation's result table with its rendering spec.
type Chart struct {
	Name  string    `json:"name"`
	Spec  ChartSpec `json:"spec"`
	Table *Table    `json:"table"`
}
