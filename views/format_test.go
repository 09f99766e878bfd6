package views

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	t.Run("free course", func(t *testing.T) {
		view := FormatPrice(0, 0, 0)
		assert.True(t, view.Free)
		assert.Equal(t, FreeLabel, view.Amount)
		assert.Empty(t, view.Original)
	})

	t.Run("plain price", func(t *testing.T) {
		view := FormatPrice(50000, 0, 0)
		assert.False(t, view.Free)
		assert.Equal(t, "50,000 ل.س", view.Amount)
		assert.Empty(t, view.Original)
	})

	t.Run("discounted price", func(t *testing.T) {
		view := FormatPrice(75000, 100000, 25)
		assert.Equal(t, "75,000 ل.س", view.Amount)
		assert.Equal(t, "100,000 ل.س", view.Original)
	})

	t.Run("original without discount stays hidden", func(t *testing.T) {
		view := FormatPrice(75000, 100000, 0)
		assert.Empty(t, view.Original)
	})

	t.Run("zero price with original is not free", func(t *testing.T) {
		view := FormatPrice(0, 100000, 100)
		assert.False(t, view.Free)
		assert.Equal(t, "0 ل.س", view.Amount)
	})
}

func TestGroupDigits(t *testing.T) {
	cases := map[string]string{
		"0":          "0",
		"999":        "999",
		"1000":       "1,000",
		"1234567":    "1,234,567",
		"1234.56":    "1,234.56",
		"-1234567.8": "-1,234,567.8",
	}
	for input, want := range cases {
		assert.Equal(t, want, groupDigits(input), "groupDigits(%q)", input)
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0 دقيقة", FormatDuration(0))
	assert.Equal(t, "45 دقيقة", FormatDuration(45))
	assert.Equal(t, "1 ساعة", FormatDuration(60))
	assert.Equal(t, "2 ساعة و 30 دقيقة", FormatDuration(150))
}

func TestFormatLessonDuration(t *testing.T) {
	assert.Empty(t, FormatLessonDuration(0))
	assert.Empty(t, FormatLessonDuration(-5))
	assert.Equal(t, "0:45", FormatLessonDuration(45))
	assert.Equal(t, "1:05", FormatLessonDuration(65))
	assert.Equal(t, "12:00", FormatLessonDuration(720))
}

func TestLessonTypeHelpers(t *testing.T) {
	assert.Equal(t, "🎬", LessonTypeIcon("video"))
	assert.Equal(t, "📄", LessonTypeIcon("pdf"))
	assert.Equal(t, "📚", LessonTypeIcon("unknown"))

	assert.Equal(t, "فيديو", LessonTypeName("video"))
	assert.Equal(t, "نص", LessonTypeName("text"))
	assert.Equal(t, "درس", LessonTypeName("unknown"))
}

func TestTimeAgo(t *testing.T) {
	t.Run("just now", func(t *testing.T) {
		stamp := time.Now().UTC().Format(time.RFC3339)
		assert.Equal(t, "الآن", TimeAgo(stamp))
	})

	t.Run("minutes ago", func(t *testing.T) {
		stamp := time.Now().UTC().Add(-5 * time.Minute).Format(time.RFC3339)
		assert.Equal(t, "منذ 5 دقيقة", TimeAgo(stamp))
	})

	t.Run("hours ago", func(t *testing.T) {
		stamp := time.Now().UTC().Add(-3 * time.Hour).Format(time.RFC3339)
		assert.Equal(t, "منذ 3 ساعة", TimeAgo(stamp))
	})

	t.Run("days ago", func(t *testing.T) {
		stamp := time.Now().UTC().Add(-48 * time.Hour).Format(time.RFC3339)
		assert.Equal(t, "منذ 2 يوم", TimeAgo(stamp))
	})

	t.Run("older than a week shows the date", func(t *testing.T) {
		old := time.Now().UTC().Add(-30 * 24 * time.Hour)
		want := old.Format("02/01/2006")
		assert.Equal(t, want, TimeAgo(old.Format(time.RFC3339)))
	})

	t.Run("zoneless timestamps read as UTC", func(t *testing.T) {
		stamp := time.Now().UTC().Add(-10 * time.Minute).Format("2006-01-02 15:04:05")
		assert.Equal(t, "منذ 10 دقيقة", TimeAgo(stamp))
	})

	t.Run("unparseable input passes through", func(t *testing.T) {
		assert.Equal(t, "yesterday-ish", TimeAgo("yesterday-ish"))
	})
}

func TestTimeAgoMinuteBoundary(t *testing.T) {
	stamp := time.Now().UTC().Add(-61 * time.Second).Format(time.RFC3339)
	assert.Equal(t, fmt.Sprintf("منذ %d دقيقة", 1), TimeAgo(stamp))
}
