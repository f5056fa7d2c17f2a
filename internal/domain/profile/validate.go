package profile

import "strings"

// Validate checks that every answer is non-empty after trimming whitespace.
// The pipeline must not reach the model on incomplete input, so this runs
// before any external call.
func (in Inputs) Validate() error {
	fields := []struct {
		dim   Dimension
		value string
	}{
		{DimInnovation, in.Innovation},
		{DimCollaboration, in.Collaboration},
		{DimLeadership, in.Leadership},
		{DimTechAcumen, in.TechAcumen},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: string(f.dim)}
		}
	}
	return nil
}
