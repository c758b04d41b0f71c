package problemgen

// Difficulty labels a problem's intended difficulty.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is a known difficulty label.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// QuestionType describes how the learner answers the problem.
type QuestionType string

const (
	// TypeSubjective means the learner types their answer.
	TypeSubjective QuestionType = "subjective"

	// TypeMultipleChoice means the learner picks one of 4 options.
	TypeMultipleChoice QuestionType = "multiple_choice"
)

// Valid reports whether t is a known question type.
func (t QuestionType) Valid() bool {
	return t == TypeSubjective || t == TypeMultipleChoice
}

// WorkingStep is one step of the worked solution.
type WorkingStep struct {
	// Step is the 1-based position in the solution.
	Step int `json:"step"`

	// Explanation describes what this step does in plain language.
	Explanation string `json:"explanation"`

	// Formula is the calculation for this step in plain ASCII,
	// e.g. "3/4 - 1/4 = 1/2".
	Formula string `json:"formula"`
}

// Choice is one multiple-choice option.
type Choice struct {
	ID    string `json:"id"`    // e.g. "a", "b", "c", "d"
	Label string `json:"label"` // display text
	Value string `json:"value"` // the answer value this option represents
}

// Problem is a generated math word problem ready for a session.
type Problem struct {
	// Statement is the word problem shown to the learner.
	Statement string `json:"statement"`

	// Answer is the canonical answer as a string. Always parseable to
	// a bare number: "12", "0.75", "3/4". Never includes units.
	Answer string `json:"answer"`

	// Working is the ordered worked solution, steps numbered from 1.
	Working []WorkingStep `json:"working"`

	// Choices holds exactly 4 options for multiple_choice problems and
	// is empty for subjective ones.
	Choices []Choice `json:"choices,omitempty"`
}

// GenerateInput holds the configuration for one problem generation.
type GenerateInput struct {
	// Level is the learner's level, e.g. "P5".
	Level string

	// Topic is the syllabus topic, e.g. "Fractions", "Speed".
	Topic string

	Difficulty   Difficulty
	QuestionType QuestionType

	// Model optionally overrides the default model for this request.
	Model string
}
