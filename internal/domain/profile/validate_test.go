package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func complete() Inputs {
	return Inputs{
		Innovation:    "Built a new caching layer",
		Collaboration: "Led standup",
		Leadership:    "Reassigned tasks",
		TechAcumen:    "Excited about agents",
	}
}

func TestValidateAcceptsCompleteInputs(t *testing.T) {
	assert.NoError(t, complete().Validate())
}

func TestValidateRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Inputs)
		field  string
	}{
		{"empty innovation", func(in *Inputs) { in.Innovation = "" }, "innovation"},
		{"whitespace collaboration", func(in *Inputs) { in.Collaboration = "   \t\n" }, "collaboration"},
		{"empty leadership", func(in *Inputs) { in.Leadership = "" }, "leadership"},
		{"whitespace tech acumen", func(in *Inputs) { in.TechAcumen = "  " }, "tech_acumen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := complete()
			tt.mutate(&in)
			err := in.Validate()

			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateReportsFirstMissingField(t *testing.T) {
	err := Inputs{}.Validate()
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "innovation", verr.Field)
}
