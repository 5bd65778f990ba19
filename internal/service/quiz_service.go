package service

import (
	"errors"
	"math"

	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/util"

	"gorm.io/gorm"
)

// QuestionKind discriminates the two answer variants of a submission.
type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "multiple_choice"
	KindFillBlank      QuestionKind = "fill_blank"
)

// AnswerEntry is one submitted answer. An empty QuestionType means
// multiple_choice; any other unknown value is rejected outright.
type AnswerEntry struct {
	Question     uint         `json:"question" binding:"required"`
	Option       uint         `json:"option" binding:"required"`
	QuestionType QuestionKind `json:"question_type"`
}

type SubmitQuizRequest struct {
	Quiz    uint          `json:"quiz" binding:"required"`
	Answers []AnswerEntry `json:"answers"`
}

type QuizResultResponse struct {
	QuizResultID   uint    `json:"quiz_result_id"`
	Score          float64 `json:"score"`
	CorrectAnswers int     `json:"correct_answers"`
}

// QuizStore loads a quiz with both question sets and their options.
type QuizStore interface {
	FindForScoring(id uint) (*model.Quiz, error)
}

// ResultWriter persists scored attempts.
type ResultWriter interface {
	Create(result *model.QuizResult) error
}

// QuizService validates and scores quiz submissions.
type QuizService struct {
	QuizRepo   QuizStore
	ResultRepo ResultWriter
}

func NewQuizService(quizRepo QuizStore, resultRepo ResultWriter) *QuizService {
	return &QuizService{
		QuizRepo:   quizRepo,
		ResultRepo: resultRepo,
	}
}

// Submit validates every answer against the quiz's question graph,
// scores the submission and persists one QuizResult row.
//
// The denominator is the quiz's full question count (multiple-choice
// plus fill-in-the-blank), not the number of submitted answers.
// Duplicate answers for the same question are NOT collapsed, matching
// the historical behavior, so a crafted submission can score above
// 100%. Any unresolved question or option id fails the whole
// submission; nothing is persisted in that case.
func (s *QuizService) Submit(userID uint, req SubmitQuizRequest) (*QuizResultResponse, error) {
	quiz, err := s.QuizRepo.FindForScoring(req.Quiz)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	choiceQuestions := make(map[uint]*model.Question, len(quiz.Questions))
	for i := range quiz.Questions {
		choiceQuestions[quiz.Questions[i].ID] = &quiz.Questions[i]
	}
	blankQuestions := make(map[uint]*model.FillInBlankQuestion, len(quiz.FillBlankQuestions))
	for i := range quiz.FillBlankQuestions {
		blankQuestions[quiz.FillBlankQuestions[i].ID] = &quiz.FillBlankQuestions[i]
	}

	correctCount := 0
	for _, answer := range req.Answers {
		kind := answer.QuestionType
		if kind == "" {
			kind = KindMultipleChoice
		}

		switch kind {
		case KindMultipleChoice:
			question, ok := choiceQuestions[answer.Question]
			if !ok {
				return nil, util.QuestionNotInQuizError(answer.Question, quiz.ID)
			}
			option := findOption(question.Options, answer.Option)
			if option == nil {
				return nil, util.OptionNotInQuestionError(answer.Option, question.ID)
			}
			if option.IsCorrect {
				correctCount++
			}

		case KindFillBlank:
			question, ok := blankQuestions[answer.Question]
			if !ok {
				return nil, util.QuestionNotInQuizError(answer.Question, quiz.ID)
			}
			option := findBlankOption(question.Options, answer.Option)
			if option == nil {
				return nil, util.OptionNotInQuestionError(answer.Option, question.ID)
			}
			if option.Text == question.CorrectAnswer {
				correctCount++
			}

		default:
			return nil, util.UnknownQuestionTypeError(string(answer.QuestionType))
		}
	}

	totalQuestions := len(quiz.Questions) + len(quiz.FillBlankQuestions)
	score := 0.0
	if totalQuestions > 0 {
		score = round2(float64(correctCount) / float64(totalQuestions) * 100)
	}

	result := &model.QuizResult{
		UserID:         userID,
		QuizID:         quiz.ID,
		Score:          score,
		CorrectAnswers: correctCount,
	}
	if err := s.ResultRepo.Create(result); err != nil {
		return nil, err
	}

	return &QuizResultResponse{
		QuizResultID:   result.ID,
		Score:          result.Score,
		CorrectAnswers: result.CorrectAnswers,
	}, nil
}

func findOption(options []model.Option, id uint) *model.Option {
	for i := range options {
		if options[i].ID == id {
			return &options[i]
		}
	}
	return nil
}

func findBlankOption(options []model.FillInBlankOption, id uint) *model.FillInBlankOption {
	for i := range options {
		if options[i].ID == id {
			return &options[i]
		}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
