package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayAllowed(t *testing.T) {
	t.Run("English Label", func(t *testing.T) {
		// 2026-09-07 is a Monday.
		assert.True(t, DayAllowed("2026-09-07", []string{"Monday"}))
		assert.False(t, DayAllowed("2026-09-08", []string{"Monday"}))
	})

	t.Run("Arabic Label", func(t *testing.T) {
		assert.True(t, DayAllowed("2026-09-07", []string{"الاثنين"}))
		assert.True(t, DayAllowed("2026-09-08", []string{"الثلاثاء"}))
		assert.True(t, DayAllowed("2026-09-08", []string{"الثلاثا"}), "short Tuesday spelling should match")
		assert.False(t, DayAllowed("2026-09-09", []string{"الخميس"}))
	})

	t.Run("Case Insensitive", func(t *testing.T) {
		assert.True(t, DayAllowed("2026-09-07", []string{"MONDAY"}))
		assert.True(t, DayAllowed("2026-09-07", []string{"monday"}))
	})

	t.Run("Substring Tolerant", func(t *testing.T) {
		assert.True(t, DayAllowed("2026-09-07", []string{"كل اثنين - Monday evening"}))
		assert.True(t, DayAllowed("2026-09-11", []string{"يوم الجمعة فقط"}))
	})

	t.Run("Mixed Labels", func(t *testing.T) {
		days := []string{"الأحد", "Tuesday", " الأربعاء "}
		assert.True(t, DayAllowed("2026-09-06", days))  // Sunday
		assert.True(t, DayAllowed("2026-09-08", days))  // Tuesday
		assert.True(t, DayAllowed("2026-09-09", days))  // Wednesday
		assert.False(t, DayAllowed("2026-09-10", days)) // Thursday
	})

	t.Run("All Weekdays Resolve", func(t *testing.T) {
		// 2026-09-06 through 2026-09-12 cover Sunday..Saturday.
		dates := []string{
			"2026-09-06", "2026-09-07", "2026-09-08", "2026-09-09",
			"2026-09-10", "2026-09-11", "2026-09-12",
		}
		english := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
		arabic := []string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"}
		for i, date := range dates {
			assert.True(t, DayAllowed(date, []string{english[i]}), "english %s", english[i])
			assert.True(t, DayAllowed(date, []string{arabic[i]}), "arabic %s", arabic[i])
		}
	})

	t.Run("Fail Open", func(t *testing.T) {
		assert.True(t, DayAllowed("2026-09-07", nil), "missing schedule allows every day")
		assert.True(t, DayAllowed("2026-09-07", []string{}), "empty schedule allows every day")
		assert.True(t, DayAllowed("not-a-date", []string{"Monday"}), "unparseable date allows")
	})

	t.Run("Blank Entries Skipped", func(t *testing.T) {
		assert.False(t, DayAllowed("2026-09-07", []string{"", "   ", "Friday"}))
	})
}

func TestIsPastDate(t *testing.T) {
	now := time.Date(2026, 9, 7, 15, 30, 0, 0, time.UTC)

	assert.True(t, IsPastDate("2026-09-06", now))
	assert.False(t, IsPastDate("2026-09-07", now), "today is not past")
	assert.False(t, IsPastDate("2026-09-08", now))
	assert.False(t, IsPastDate("garbage", now), "malformed dates are not past")
}

func TestMinBookableDate(t *testing.T) {
	now := time.Date(2026, 9, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2026-09-07", MinBookableDate(now))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2026-09-07"))
	assert.False(t, ValidDate("07-09-2026"))
	assert.False(t, ValidDate("2026-9-7"))
	assert.False(t, ValidDate(""))
}
