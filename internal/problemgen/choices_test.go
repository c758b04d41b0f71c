package problemgen

import "testing"

func mcChoices() []Choice {
	return []Choice{
		{ID: "a", Label: "1/4", Value: "1/4"},
		{ID: "b", Label: "1/2", Value: "1/2"},
		{ID: "c", Label: "3/4", Value: "3/4"},
		{ID: "d", Label: "1", Value: "1"},
	}
}

func TestChoicesValidatorMultipleChoice(t *testing.T) {
	v := &ChoicesValidator{}
	input := GenerateInput{QuestionType: TypeMultipleChoice}

	tests := []struct {
		name   string
		mutate func(*Problem)
		wantOK bool
	}{
		{"valid", func(p *Problem) {}, true},
		{"three choices", func(p *Problem) { p.Choices = p.Choices[:3] }, false},
		{"five choices", func(p *Problem) {
			p.Choices = append(p.Choices, Choice{ID: "e", Label: "2", Value: "2"})
		}, false},
		{"duplicate id", func(p *Problem) { p.Choices[1].ID = "a" }, false},
		{"empty id", func(p *Problem) { p.Choices[0].ID = "" }, false},
		{"no match", func(p *Problem) { p.Choices[1].Value = "5/8" }, false},
		{"two matches", func(p *Problem) { p.Choices[0].Value = "0.5" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProblem()
			p.Choices = mcChoices()
			tt.mutate(p)
			err := v.Validate(p, input)
			if (err == nil) != tt.wantOK {
				t.Errorf("Validate() = %v, wantOK %v", err, tt.wantOK)
			}
		})
	}
}

func TestChoicesValidatorToleranceMatch(t *testing.T) {
	// "0.5" equals "1/2" under the evaluation tolerance, so a decimal
	// option matching a fractional answer counts as the correct one.
	v := &ChoicesValidator{}
	p := validProblem()
	p.Choices = []Choice{
		{ID: "a", Label: "0.5", Value: "0.5"},
		{ID: "b", Label: "0.25", Value: "0.25"},
		{ID: "c", Label: "0.75", Value: "0.75"},
		{ID: "d", Label: "1", Value: "1"},
	}

	if err := v.Validate(p, GenerateInput{QuestionType: TypeMultipleChoice}); err != nil {
		t.Errorf("Validate() = %v, want tolerance match to count", err)
	}
}

func TestChoicesValidatorSubjective(t *testing.T) {
	v := &ChoicesValidator{}
	input := GenerateInput{QuestionType: TypeSubjective}

	p := validProblem()
	if err := v.Validate(p, input); err != nil {
		t.Errorf("Validate(no choices) = %v, want nil", err)
	}

	p.Choices = mcChoices()
	if err := v.Validate(p, input); err == nil {
		t.Error("Validate(subjective with choices) = nil, want error")
	}
}
