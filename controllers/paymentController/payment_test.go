package paymentController

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"courseweb/client"
)

func TestFriendlyConflict(t *testing.T) {
	t.Run("matches known phrases regardless of case", func(t *testing.T) {
		message, ok := friendlyConflict(errors.New("Course Already Paid for this user"))
		assert.True(t, ok)
		assert.Equal(t, "لقد دفعت رسوم هذا الكورس مسبقاً", message)
	})

	t.Run("matches pending payment", func(t *testing.T) {
		message, ok := friendlyConflict(&client.ApiError{StatusCode: 409, Message: "payment pending review"})
		assert.True(t, ok)
		assert.Equal(t, "لديك دفعة قيد المراجعة لهذا الكورس", message)
	})

	t.Run("matches arabic server phrasing", func(t *testing.T) {
		_, ok := friendlyConflict(errors.New("هذا الكورس مدفوع مسبقاً"))
		assert.True(t, ok)
	})

	t.Run("unknown errors pass through", func(t *testing.T) {
		_, ok := friendlyConflict(errors.New("database on fire"))
		assert.False(t, ok)
	})
}

func TestValidMethod(t *testing.T) {
	assert.True(t, validMethod("cash"))
	assert.True(t, validMethod("bank_transfer"))
	assert.True(t, validMethod("online"))
	assert.False(t, validMethod(""))
	assert.False(t, validMethod("credit_card"))
}
