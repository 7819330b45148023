package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

var ErrInvalidQuestion = errors.New("invalid question")

var validate = validator.New()

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeCompletion     QuestionType = "completion"
	QuestionTypeMatching       QuestionType = "matching"
	QuestionTypeTable          QuestionType = "table"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeMultipleChoice, QuestionTypeCompletion, QuestionTypeMatching, QuestionTypeTable:
		return true
	}
	return false
}

// QuestionData is the per-type payload of a question. Exactly one variant
// exists per QuestionType.
type QuestionData interface {
	QuestionType() QuestionType
}

type MultipleChoiceData struct {
	Options []string `json:"options" validate:"min=2,dive,required"`
}

type CompletionData struct {
	WordLimit int `json:"word_limit,omitempty" validate:"gte=0"`
}

type MatchingData struct {
	Left  []string `json:"left" validate:"min=1,dive,required"`
	Right []string `json:"right" validate:"min=1,dive,required"`
}

// TableData is either a headers+rows grid or a reference to an image of the table.
type TableData struct {
	Headers  []string   `json:"headers,omitempty" validate:"omitempty,dive,required"`
	Rows     [][]string `json:"rows,omitempty" validate:"omitempty,dive,min=1"`
	ImageURL string     `json:"image_url,omitempty" validate:"omitempty,url"`
}

func (MultipleChoiceData) QuestionType() QuestionType { return QuestionTypeMultipleChoice }
func (CompletionData) QuestionType() QuestionType     { return QuestionTypeCompletion }
func (MatchingData) QuestionType() QuestionType       { return QuestionTypeMatching }
func (TableData) QuestionType() QuestionType          { return QuestionTypeTable }

// DecodeQuestionData decodes raw into the variant for t and validates it.
// Unknown keys are rejected.
func DecodeQuestionData(t QuestionType, raw []byte) (QuestionData, error) {
	if len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null" {
		raw = []byte("{}")
	}

	var data QuestionData
	switch t {
	case QuestionTypeMultipleChoice:
		var d MultipleChoiceData
		if err := strictUnmarshal(raw, &d); err != nil {
			return nil, err
		}
		data = d
	case QuestionTypeCompletion:
		var d CompletionData
		if err := strictUnmarshal(raw, &d); err != nil {
			return nil, err
		}
		data = d
	case QuestionTypeMatching:
		var d MatchingData
		if err := strictUnmarshal(raw, &d); err != nil {
			return nil, err
		}
		data = d
	case QuestionTypeTable:
		var d TableData
		if err := strictUnmarshal(raw, &d); err != nil {
			return nil, err
		}
		if d.ImageURL == "" && (len(d.Headers) == 0 || len(d.Rows) == 0) {
			return nil, fmt.Errorf("%w: table needs headers and rows or an image_url", ErrInvalidQuestion)
		}
		data = d
	default:
		return nil, fmt.Errorf("%w: unknown question_type %q", ErrInvalidQuestion, t)
	}

	if err := validate.Struct(data); err != nil {
		return nil, fmt.Errorf("%w: %s question_data: %v", ErrInvalidQuestion, t, err)
	}
	return data, nil
}

func strictUnmarshal(raw []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: malformed question_data: %v", ErrInvalidQuestion, err)
	}
	return nil
}

// ValidateCorrectAnswer checks the shape of a correct answer for t: a mapping
// for matching, a string or list of strings for everything else.
func ValidateCorrectAnswer(t QuestionType, raw []byte) error {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%w: malformed correct_answer: %v", ErrInvalidQuestion, err)
	}

	if t == QuestionTypeMatching {
		pairs, ok := v.(map[string]interface{})
		if !ok || len(pairs) == 0 {
			return fmt.Errorf("%w: matching correct_answer must be a non-empty mapping", ErrInvalidQuestion)
		}
		for k, val := range pairs {
			s, ok := val.(string)
			if !ok || strings.TrimSpace(s) == "" || strings.TrimSpace(k) == "" {
				return fmt.Errorf("%w: matching correct_answer entries must be non-blank strings", ErrInvalidQuestion)
			}
		}
		return nil
	}

	switch val := v.(type) {
	case string:
		if strings.TrimSpace(val) == "" {
			return fmt.Errorf("%w: correct_answer is blank", ErrInvalidQuestion)
		}
	case []interface{}:
		if len(val) == 0 {
			return fmt.Errorf("%w: correct_answer list is empty", ErrInvalidQuestion)
		}
		for _, item := range val {
			s, ok := item.(string)
			if !ok || strings.TrimSpace(s) == "" {
				return fmt.Errorf("%w: correct_answer list entries must be non-blank strings", ErrInvalidQuestion)
			}
		}
	default:
		return fmt.Errorf("%w: correct_answer must be a string or a list of strings", ErrInvalidQuestion)
	}
	return nil
}

// QuestionContent is the part shared by listening and reading questions.
type QuestionContent struct {
	QuestionText  string         `json:"question_text" gorm:"type:text;not null"`
	QuestionType  QuestionType   `json:"question_type" gorm:"type:varchar(32);not null"`
	QuestionData  datatypes.JSON `json:"question_data" gorm:"type:jsonb"`
	CorrectAnswer datatypes.JSON `json:"correct_answer" gorm:"type:jsonb;not null"`
	Points        int            `json:"points" gorm:"not null;default:1"`
	Explanation   string         `json:"explanation,omitempty" gorm:"type:text"`
}

// NewQuestionContent validates the payload and correct answer once and stores
// the canonical encoding of the payload variant.
func NewQuestionContent(text string, t QuestionType, data, correct json.RawMessage, points int, explanation string) (QuestionContent, error) {
	if strings.TrimSpace(text) == "" {
		return QuestionContent{}, fmt.Errorf("%w: question_text is required", ErrInvalidQuestion)
	}
	if !t.Valid() {
		return QuestionContent{}, fmt.Errorf("%w: unknown question_type %q", ErrInvalidQuestion, t)
	}
	decoded, err := DecodeQuestionData(t, data)
	if err != nil {
		return QuestionContent{}, err
	}
	if err := ValidateCorrectAnswer(t, correct); err != nil {
		return QuestionContent{}, err
	}
	canonical, err := json.Marshal(decoded)
	if err != nil {
		return QuestionContent{}, fmt.Errorf("encode question_data: %w", err)
	}
	if points <= 0 {
		points = 1
	}
	return QuestionContent{
		QuestionText:  strings.TrimSpace(text),
		QuestionType:  t,
		QuestionData:  datatypes.JSON(canonical),
		CorrectAnswer: datatypes.JSON(correct),
		Points:        points,
		Explanation:   explanation,
	}, nil
}

func (q QuestionContent) Data() (QuestionData, error) {
	return DecodeQuestionData(q.QuestionType, q.QuestionData)
}
