package util

import (
	"errors"
	"fmt"
)

var (
	ErrEmailRegistered    = errors.New("already_registered")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrGroupNotFound      = errors.New("group not found")
	ErrSlugTaken          = errors.New("slug already in use")

	// ErrInvalidSubmission is the base of every reference error raised
	// while validating a quiz submission. Nothing is persisted once one
	// of these is returned.
	ErrInvalidSubmission = errors.New("invalid submission")
)

func QuestionNotInQuizError(questionID, quizID uint) error {
	return fmt.Errorf("question id %d is not part of quiz %d: %w", questionID, quizID, ErrInvalidSubmission)
}

func OptionNotInQuestionError(optionID, questionID uint) error {
	return fmt.Errorf("option id %d is not valid for question id %d: %w", optionID, questionID, ErrInvalidSubmission)
}

func UnknownQuestionTypeError(kind string) error {
	return fmt.Errorf("unknown question_type %q: %w", kind, ErrInvalidSubmission)
}
