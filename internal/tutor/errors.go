package tutor

import "errors"

// ErrAnswerNotNumeric is returned when neither the deterministic parser
// nor the generative fallback could read a number out of the learner's
// answer. Nothing is persisted for such an attempt; the caller should
// ask the learner to restate the answer.
var ErrAnswerNotNumeric = errors.New("answer could not be interpreted as a number")
