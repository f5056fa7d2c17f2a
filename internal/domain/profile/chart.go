package profile

// RadarPoint is one vertex of the polar plot.
type RadarPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// RadarSeries describes the closed radar polygon for one score set. The
// rendering layer consumes this as-is; no drawing happens server-side.
type RadarSeries struct {
	Name   string       `json:"name"`
	Min    int          `json:"min"`
	Max    int          `json:"max"`
	Points []RadarPoint `json:"points"`
}

// BuildRadar returns the four dimensions in fixed order plus the first point
// repeated so the polygon closes. The value domain is always [0,100]. Pure
// function; same scores always yield the same series.
func BuildRadar(name string, s Scores) RadarSeries {
	points := []RadarPoint{
		{Label: string(DimInnovation), Value: s.Innovation},
		{Label: string(DimCollaboration), Value: s.Collaboration},
		{Label: string(DimLeadership), Value: s.Leadership},
		{Label: string(DimTechAcumen), Value: s.TechAcumen},
	}
	points = append(points, points[0])
	return RadarSeries{Name: name, Min: 0, Max: 100, Points: points}
}
