package exercise

import "strings"

// InvalidGradeMessage is returned by GradeMessage for anything outside A..E.
const InvalidGradeMessage = "Invalid grade."

// GradeMessage maps a letter grade to its feedback message.
func GradeMessage(grade string) string {
	switch strings.TrimSpace(grade) {
	case "A":
		return "Outstanding performance."
	case "B":
		return "Good performance."
	case "C":
		return "Satisfactory performance."
	case "D":
		return "Needs improvement."
	case "E":
		return "Fail."
	default:
		return InvalidGradeMessage
	}
}
