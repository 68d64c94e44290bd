package domain

import (
	"iter"
	"time"

	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

const minutesPerDay = 24 * 60

// SlotReason причина, по которой слот не может быть забронирован
type SlotReason string

const (
	SlotOK              SlotReason = ""
	ReasonDayClosed     SlotReason = "DAY_CLOSED"
	ReasonOutsideHours  SlotReason = "OUTSIDE_HOURS"
	ReasonExceedsDayEnd SlotReason = "EXCEEDS_DAY_END"
	ReasonTimePassed    SlotReason = "TIME_PASSED"
	ReasonSlotTaken     SlotReason = "SLOT_TAKEN"
)

// SlotRules параметры сетки слотов
type SlotRules struct {
	GranularityMinutes int
}

// DefaultSlotRules шаг 15 минут
func DefaultSlotRules() SlotRules {
	return SlotRules{GranularityMinutes: DefaultSlotGranularityMinutes}
}

func (r SlotRules) step() int {
	if r.GranularityMinutes <= 0 {
		return DefaultSlotGranularityMinutes
	}
	return r.GranularityMinutes
}

// GenerateSlots возвращает ленивую последовательность свободных стартов на дату в порядке возрастания.
// Кандидаты идут от начала рабочего дня с шагом сетки; кандидат попадает в выдачу,
// только если ValidateSlot принимает его на том же снимке бронирований.
// Последовательность не хранит состояния между обходами. duration должен быть положительным.
func GenerateSlots(
	calendar WorkCalendar,
	duration int,
	date time.Time,
	existing []*Booking,
	now time.Time,
	rules SlotRules,
) iter.Seq[types.TimeString] {
	return func(yield func(types.TimeString) bool) {
		if duration <= 0 || !calendar.IsWorkingDay(date) {
			return
		}

		end := calendar.End.Minutes()
		for m := calendar.Start.Minutes(); m+duration <= end; m += rules.step() {
			candidate, err := types.NewTimeStringFromMinutes(m)
			if err != nil {
				return
			}
			if ok, _ := ValidateSlot(calendar, duration, date, candidate, existing, now, rules); !ok {
				continue
			}
			if !yield(candidate) {
				return
			}
		}
	}
}

// ValidateSlot проверяет слот [start, start+duration) по порядку:
// рабочий день, рабочие часы, конец рабочего дня, прошедшее время, пересечения.
// Возвращает первую нарушенную причину.
func ValidateSlot(
	calendar WorkCalendar,
	duration int,
	date time.Time,
	start types.TimeString,
	existing []*Booking,
	now time.Time,
	rules SlotRules,
) (bool, SlotReason) {
	if !calendar.IsWorkingDay(date) {
		return false, ReasonDayClosed
	}

	if reason := checkHours(calendar, start, duration); reason != SlotOK {
		return false, reason
	}

	if isDateInPast(date, now) {
		return false, ReasonTimePassed
	}
	if isSameDay(date, now) && start.Minutes() < RoundUpToGranularity(now, rules.step()) {
		return false, ReasonTimePassed
	}

	if overlapsAny(start.Minutes(), start.Minutes()+duration, existing, 0) {
		return false, ReasonSlotTaken
	}

	return true, SlotOK
}

// ValidateReschedule проверяет бронирование с новой длительностью на его же дате и времени.
// Само бронирование из existing исключается. День недели и прошедшее время не проверяются:
// дата и старт не меняются.
func ValidateReschedule(calendar WorkCalendar, booking *Booking, duration int, existing []*Booking) (bool, SlotReason) {
	if reason := checkHours(calendar, booking.StartTime, duration); reason != SlotOK {
		return false, reason
	}
	start := booking.StartTime.Minutes()
	if overlapsAny(start, start+duration, existing, booking.ID) {
		return false, ReasonSlotTaken
	}
	return true, SlotOK
}

// RoundUpToGranularity минуты от полуночи для now, округлённые вверх до ближайшей отметки сетки.
// Ровно на отметке время не сдвигается; любые секунды сверх отметки переносят на следующую.
// Результат может быть равен 24*60, если округление переходит полночь.
func RoundUpToGranularity(now time.Time, granularity int) int {
	if granularity <= 0 {
		granularity = DefaultSlotGranularityMinutes
	}
	seconds := now.Hour()*3600 + now.Minute()*60 + now.Second()
	if now.Nanosecond() > 0 {
		seconds++
	}
	stepSeconds := granularity * 60
	rounded := (seconds + stepSeconds - 1) / stepSeconds * granularity
	if rounded > minutesPerDay {
		return minutesPerDay
	}
	return rounded
}

// Overlaps полуоткрытые интервалы [aStart,aEnd) и [bStart,bEnd) пересекаются.
// Стыкующиеся интервалы не пересекаются.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

func checkHours(calendar WorkCalendar, start types.TimeString, duration int) SlotReason {
	s := start.Minutes()
	if s < 0 || s < calendar.Start.Minutes() || s >= calendar.End.Minutes() {
		return ReasonOutsideHours
	}
	if s+duration > calendar.End.Minutes() {
		return ReasonExceedsDayEnd
	}
	return SlotOK
}

func overlapsAny(start, end int, existing []*Booking, excludeID int64) bool {
	for _, b := range existing {
		if b == nil || !b.IsActive() {
			continue
		}
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		bStart, bEnd := b.StartTime.Minutes(), b.EndTime.Minutes()
		if bStart < 0 || bEnd < 0 {
			continue
		}
		if Overlaps(bStart, bEnd, start, end) {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}

// DateOnly отбрасывает время, сохраняя календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
