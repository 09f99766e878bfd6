package quizValidator

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseweb/models"
)

func quizTestApp(passed *bool, captured *models.QuizQuestion) *fiber.App {
	app := fiber.New()
	app.Post("/teacher/lessons/:id/quiz", CreateQuestion(), func(c *fiber.Ctx) error {
		*passed = true
		if question, ok := c.Locals("validatedQuestion").(models.QuizQuestion); ok {
			*captured = question
		}
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func postForm(t *testing.T, app *fiber.App, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/teacher/lessons/5/quiz", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateQuestionRejectsTooFewAnswers(t *testing.T) {
	var passed bool
	var question models.QuizQuestion
	app := quizTestApp(&passed, &question)

	form := url.Values{}
	form.Set("question_text", "ما هي عاصمة سوريا؟")
	form.Set("type", models.QuestionMultipleChoice)
	form.Add("answer_text", "دمشق")
	form.Add("answer_text", "")
	form.Add("answer_text", "")
	form.Set("correct_index", "0")

	resp := postForm(t, app, form)

	assert.False(t, passed, "handler must not run on invalid input")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	location := resp.Header.Get("Location")
	assert.Contains(t, location, "/teacher/lessons/5/quiz?error=")
	assert.Contains(t, location, url.QueryEscape(NotEnoughAnswersMessage))
}

func TestCreateQuestionKeepsCorrectIndexAlignedAcrossEmptyFields(t *testing.T) {
	var passed bool
	var question models.QuizQuestion
	app := quizTestApp(&passed, &question)

	// The second field is blank, the third holds the correct answer.
	// The index refers to form positions, blanks included.
	form := url.Values{}
	form.Set("question_text", "اختر الإجابة")
	form.Set("type", models.QuestionMultipleChoice)
	form.Add("answer_text", "خيار أول")
	form.Add("answer_text", "")
	form.Add("answer_text", "الإجابة الصحيحة")
	form.Set("correct_index", "2")

	postForm(t, app, form)

	require.True(t, passed)
	require.Len(t, question.Answers, 2)
	assert.False(t, question.Answers[0].IsCorrect)
	assert.True(t, question.Answers[1].IsCorrect)
	assert.Equal(t, "الإجابة الصحيحة", question.Answers[1].AnswerText)
}

func TestCreateQuestionRejectsEmptyCorrectAnswer(t *testing.T) {
	var passed bool
	var question models.QuizQuestion
	app := quizTestApp(&passed, &question)

	form := url.Values{}
	form.Set("question_text", "اختر الإجابة")
	form.Set("type", models.QuestionMultipleChoice)
	form.Add("answer_text", "خيار أول")
	form.Add("answer_text", "")
	form.Set("correct_index", "1")

	resp := postForm(t, app, form)

	assert.False(t, passed)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
}

func TestCreateQuestionRequiresQuestionText(t *testing.T) {
	var passed bool
	var question models.QuizQuestion
	app := quizTestApp(&passed, &question)

	form := url.Values{}
	form.Set("type", models.QuestionTrueFalse)
	form.Set("correct_answer", "true")

	resp := postForm(t, app, form)

	assert.False(t, passed)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
}

func TestCreateQuestionAcceptsTrueFalse(t *testing.T) {
	var passed bool
	var question models.QuizQuestion
	app := quizTestApp(&passed, &question)

	form := url.Values{}
	form.Set("question_text", "Go لغة مفسرة")
	form.Set("type", models.QuestionTrueFalse)
	form.Set("correct_answer", "false")

	postForm(t, app, form)

	require.True(t, passed)
	assert.Equal(t, models.QuestionTrueFalse, question.Type)
	assert.Equal(t, "false", question.CorrectAnswer)
	assert.Empty(t, question.Answers)
}

func TestCreateQuestionRejectsInvalidTrueFalseAnswer(t *testing.T) {
	var passed bool
	var question models.QuizQuestion
	app := quizTestApp(&passed, &question)

	form := url.Values{}
	form.Set("question_text", "سؤال")
	form.Set("type", models.QuestionTrueFalse)
	form.Set("correct_answer", "maybe")

	resp := postForm(t, app, form)

	assert.False(t, passed)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
}

func TestCreateQuestionRejectsUnknownType(t *testing.T) {
	var passed bool
	var question models.QuizQuestion
	app := quizTestApp(&passed, &question)

	form := url.Values{}
	form.Set("question_text", "سؤال")
	form.Set("type", "essay")

	resp := postForm(t, app, form)

	assert.False(t, passed)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
}
