package feedback

import (
	"fmt"
	"strings"
)

const feedbackSystemPrompt = `You are an encouraging math tutor giving feedback to a primary school student.

Rules:
- Write 1-3 short sentences in plain ASCII text, addressed directly to the student.
- If the attempt is correct, confirm it and reinforce the key idea.
- If the attempt is wrong, point toward the likely mistake without giving away the answer.
- Never state the correct answer or its numeric value in the feedback.
- Be warm and specific to this problem, never generic praise.`

const hintSystemPrompt = `You are a math tutor helping a primary school student who is stuck.

Rules:
- Respond with exactly one guiding question that points the student toward the next step.
- Do not perform any calculation and do not reveal any intermediate or final result.
- Do not repeat formulas from the worked solution verbatim.
- Use plain ASCII text, suitable for a child.`

func buildFeedbackMessage(input FeedbackInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Problem: %s\n", input.Statement)
	fmt.Fprintf(&b, "Correct answer: %s\n", input.CorrectAnswer)
	fmt.Fprintf(&b, "Student answered: %s\n", input.StudentAnswer)
	if input.Correct {
		b.WriteString("The attempt is CORRECT.\n")
	} else {
		b.WriteString("The attempt is WRONG.\n")
	}

	return b.String()
}

func buildHintMessage(input HintInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Problem: %s\n", input.Statement)
	if len(input.Working) > 0 {
		b.WriteString("Worked solution (for your reference only, never reveal it):\n")
		for i, f := range input.Working {
			fmt.Fprintf(&b, "%d. %s\n", i+1, f)
		}
	}
	b.WriteString("The student is stuck and needs one guiding question.\n")

	return b.String()
}
