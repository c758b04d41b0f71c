package problemgen

import "testing"

func validProblem() *Problem {
	return &Problem{
		Statement: "Mei has 3/4 kg of flour. She uses 1/4 kg. How much flour is left?",
		Answer:    "1/2",
		Working: []WorkingStep{
			{Step: 1, Explanation: "Subtract the flour used", Formula: "3/4 - 1/4 = 2/4"},
			{Step: 2, Explanation: "Simplify the fraction", Formula: "2/4 = 1/2"},
		},
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}
	input := GenerateInput{Difficulty: DifficultyMedium, QuestionType: TypeSubjective}

	tests := []struct {
		name   string
		mutate func(*Problem)
		wantOK bool
	}{
		{"valid", func(p *Problem) {}, true},
		{"empty statement", func(p *Problem) { p.Statement = "" }, false},
		{"empty answer", func(p *Problem) { p.Answer = "" }, false},
		{"no working", func(p *Problem) { p.Working = nil }, false},
		{"steps not from 1", func(p *Problem) { p.Working[0].Step = 2 }, false},
		{"steps not consecutive", func(p *Problem) { p.Working[1].Step = 3 }, false},
		{"step missing explanation", func(p *Problem) { p.Working[0].Explanation = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProblem()
			tt.mutate(p)
			err := v.Validate(p, input)
			if (err == nil) != tt.wantOK {
				t.Errorf("Validate() = %v, wantOK %v", err, tt.wantOK)
			}
			if err != nil && !err.Retryable {
				t.Errorf("Validate() error not retryable: %v", err)
			}
		})
	}
}

func TestNumericAnswerValidator(t *testing.T) {
	v := &NumericAnswerValidator{}
	input := GenerateInput{}

	tests := []struct {
		answer string
		wantOK bool
	}{
		{"12", true},
		{"0.75", true},
		{"3/4", true},
		{"-5", true},
		{"50%", true},
		{"12 cm", true}, // leading number still parses
		{"about twelve", false},
		{"3/0", false},
		{"", false},
	}

	for _, tt := range tests {
		p := validProblem()
		p.Answer = tt.answer
		err := v.Validate(p, input)
		if (err == nil) != tt.wantOK {
			t.Errorf("Validate(answer=%q) = %v, wantOK %v", tt.answer, err, tt.wantOK)
		}
	}
}
