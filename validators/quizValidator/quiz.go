package quizValidator

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"courseweb/models"
)

// Warning shown when a multiple-choice question has fewer than two
// filled answers
const NotEnoughAnswersMessage = "يجب إدخال خيارين على الأقل لسؤال الاختيار من متعدد"

// CreateQuestion validates a quiz question submission. Invalid
// questions are rejected here, before any network call.
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID := c.Params("id")

		questionText := strings.TrimSpace(c.FormValue("question_text"))
		questionType := c.FormValue("type")

		if questionText == "" {
			return redirectWithError(c, lessonID, "نص السؤال مطلوب")
		}

		switch questionType {
		case models.QuestionTrueFalse:
			correct := c.FormValue("correct_answer")
			if correct != "true" && correct != "false" {
				return redirectWithError(c, lessonID, "يرجى تحديد الإجابة الصحيحة")
			}
			c.Locals("validatedQuestion", models.QuizQuestion{
				QuestionText:  questionText,
				Type:          questionType,
				CorrectAnswer: correct,
			})

		case models.QuestionMultipleChoice:
			// Raw answer fields, empties included, so the correct
			// index still points at the field the form showed
			raw := answerFields(c)

			correctIndex, err := strconv.Atoi(c.FormValue("correct_index", "-1"))
			if err != nil || correctIndex < 0 || correctIndex >= len(raw) {
				return redirectWithError(c, lessonID, "يرجى تحديد الإجابة الصحيحة")
			}
			if strings.TrimSpace(raw[correctIndex]) == "" {
				return redirectWithError(c, lessonID, "الإجابة الصحيحة لا يمكن أن تكون فارغة")
			}

			var answers []models.QuizAnswer
			for i, text := range raw {
				text = strings.TrimSpace(text)
				if text == "" {
					continue
				}
				answers = append(answers, models.QuizAnswer{
					AnswerText: text,
					IsCorrect:  i == correctIndex,
				})
			}
			if len(answers) < 2 {
				return redirectWithError(c, lessonID, NotEnoughAnswersMessage)
			}

			c.Locals("validatedQuestion", models.QuizQuestion{
				QuestionText: questionText,
				Type:         questionType,
				Answers:      answers,
			})

		default:
			return redirectWithError(c, lessonID, "نوع السؤال غير صالح")
		}

		return c.Next()
	}
}

func answerFields(c *fiber.Ctx) []string {
	var fields []string
	for _, raw := range c.Context().PostArgs().PeekMulti("answer_text") {
		fields = append(fields, string(raw))
	}
	return fields
}

func redirectWithError(c *fiber.Ctx, lessonID, message string) error {
	return c.Redirect(fmt.Sprintf("/teacher/lessons/%s/quiz?error=%s", lessonID, url.QueryEscape(message)))
}
