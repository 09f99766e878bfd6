package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"courseweb/models"
)

// FreeLabel is the localized label for zero-priced courses
const FreeLabel = "مجاني"

const currencySuffix = " ل.س"

// PriceView is the typed price display model. Free courses carry the
// localized label in Amount; discounted courses carry the original
// amount for strike-through rendering.
type PriceView struct {
	Free     bool
	Amount   string
	Original string
}

// FormatPrice builds the price display. A course is free only when the
// price is zero and no original price exists; a discount shows only
// when both the percentage and the original price are positive.
func FormatPrice(price, originalPrice, discountPercentage float64) PriceView {
	if price == 0 && originalPrice == 0 {
		return PriceView{Free: true, Amount: FreeLabel}
	}

	view := PriceView{Amount: formatAmount(price)}
	if discountPercentage > 0 && originalPrice > 0 {
		view.Original = formatAmount(originalPrice)
	}
	return view
}

func formatAmount(value float64) string {
	return groupDigits(strconv.FormatFloat(value, 'f', -1, 64)) + currencySuffix
}

// groupDigits inserts thousands separators into the integer part
func groupDigits(number string) string {
	integer, fraction := number, ""
	if idx := strings.IndexByte(number, '.'); idx >= 0 {
		integer, fraction = number[:idx], number[idx:]
	}

	var sign string
	if strings.HasPrefix(integer, "-") {
		sign, integer = "-", integer[1:]
	}

	var b strings.Builder
	lead := len(integer) % 3
	if lead > 0 {
		b.WriteString(integer[:lead])
	}
	for i := lead; i < len(integer); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(integer[i : i+3])
	}

	return sign + b.String() + fraction
}

// FormatDuration renders a course duration given in minutes. The hour
// component appears only from 60 minutes up, and a zero remainder
// drops the minute component.
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	if hours > 0 {
		if mins > 0 {
			return fmt.Sprintf("%d ساعة و %d دقيقة", hours, mins)
		}
		return fmt.Sprintf("%d ساعة", hours)
	}
	return fmt.Sprintf("%d دقيقة", mins)
}

// FormatLessonDuration renders a lesson duration in seconds as m:ss.
// Lessons without a duration render nothing.
func FormatLessonDuration(seconds int) string {
	if seconds <= 0 {
		return ""
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// LessonTypeIcon maps a lesson type to its icon
func LessonTypeIcon(lessonType string) string {
	switch lessonType {
	case models.LessonVideo:
		return "🎬"
	case models.LessonText:
		return "📝"
	case models.LessonPDF:
		return "📄"
	default:
		return "📚"
	}
}

// LessonTypeName maps a lesson type to its localized name
func LessonTypeName(lessonType string) string {
	switch lessonType {
	case models.LessonVideo:
		return "فيديو"
	case models.LessonText:
		return "نص"
	case models.LessonPDF:
		return "PDF"
	default:
		return "درس"
	}
}

// NotificationIcon maps a notification type to its icon
func NotificationIcon(notificationType string) string {
	switch notificationType {
	case "receipt_uploaded":
		return "🧾"
	case "new_payment":
		return "💳"
	case "new_enrollment":
		return "📝"
	default:
		return "🔔"
	}
}

// timeLayouts the API has been seen using for created_at
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// TimeAgo renders a created_at timestamp relative to now. Timestamps
// without a zone are treated as UTC, matching the API.
func TimeAgo(createdAt string) string {
	var parsed time.Time
	var err error
	for _, layout := range timeLayouts {
		parsed, err = time.ParseInLocation(layout, createdAt, time.UTC)
		if err == nil {
			break
		}
	}
	if err != nil {
		return createdAt
	}

	diff := time.Since(parsed)
	switch {
	case diff < time.Minute:
		return "الآن"
	case diff < time.Hour:
		return fmt.Sprintf("منذ %d دقيقة", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("منذ %d ساعة", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("منذ %d يوم", int(diff.Hours()/24))
	default:
		return parsed.Format("02/01/2006")
	}
}
