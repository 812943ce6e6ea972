package domain

import "strings"

// SecurityQuestion is a key from the fixed set of recovery questions.
type SecurityQuestion string

const (
	QuestionFirstPet         SecurityQuestion = "first_pet"
	QuestionBirthCity        SecurityQuestion = "birth_city"
	QuestionMotherMaidenName SecurityQuestion = "mother_maiden_name"
	QuestionFirstSchool      SecurityQuestion = "first_school"
	QuestionFavoriteBook     SecurityQuestion = "favorite_book"
)

var questionText = map[SecurityQuestion]string{
	QuestionFirstPet:         "What was the name of your first pet?",
	QuestionBirthCity:        "In what city were you born?",
	QuestionMotherMaidenName: "What is your mother's maiden name?",
	QuestionFirstSchool:      "What was the name of your first school?",
	QuestionFavoriteBook:     "What is your favorite book?",
}

// SecurityQuestions lists the fixed set in display order.
var SecurityQuestions = []SecurityQuestion{
	QuestionFirstPet,
	QuestionBirthCity,
	QuestionMotherMaidenName,
	QuestionFirstSchool,
	QuestionFavoriteBook,
}

// Text returns the question as shown to users.
func (q SecurityQuestion) Text() string { return questionText[q] }

// Valid reports whether q belongs to the fixed set.
func (q SecurityQuestion) Valid() bool {
	_, ok := questionText[q]
	return ok
}

// ParseSecurityQuestion accepts either a question key or its exact text.
func ParseSecurityQuestion(s string) (SecurityQuestion, bool) {
	s = strings.TrimSpace(s)
	if q := SecurityQuestion(s); q.Valid() {
		return q, true
	}
	for q, text := range questionText {
		if text == s {
			return q, true
		}
	}
	return "", false
}

// NormalizeAnswer makes answer comparison insensitive to case and
// surrounding whitespace.
func NormalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
