package domain

import "fmt"

// Transition ребро машины состояний бронирования
type Transition struct {
	From BookingStatus
	To   BookingStatus
}

// TransitionOutcome что нужно сделать после проверки перехода
type TransitionOutcome struct {
	// Noop статус уже установлен, ничего не меняется и побочные эффекты не запускаются
	Noop bool
	// Completes переход в COMPLETED: начисление скидки или письмо гостю
	Completes bool
	// Cancels переход в CANCELLED: нужно записать, кто и почему отменил
	Cancels bool
}

type guard func(actor Actor, b *Booking) bool

type transitionRule struct {
	allowed         guard
	noop            bool
	requiresResults bool
}

func adminOrOwningPhotographer(actor Actor, b *Booking) bool {
	return actor.IsAdmin() || actor.OwnsAsPhotographer(b)
}

func owningPhotographer(actor Actor, b *Booking) bool {
	return actor.OwnsAsPhotographer(b)
}

func anyOwnerOrAdmin(actor Actor, b *Booking) bool {
	return actor.OwnsAsCustomer(b) || adminOrOwningPhotographer(actor, b)
}

// transitions таблица допустимых переходов. Всё, чего нет в таблице, отклоняется.
// Повторное подтверждение и повторное завершение допустимы и ничего не меняют.
var transitions = map[Transition]transitionRule{
	{StatusPending, StatusConfirmed}:   {allowed: adminOrOwningPhotographer},
	{StatusPending, StatusCancelled}:   {allowed: anyOwnerOrAdmin},
	{StatusConfirmed, StatusDone}:      {allowed: owningPhotographer},
	{StatusDone, StatusCompleted}:      {allowed: owningPhotographer, requiresResults: true},
	{StatusConfirmed, StatusConfirmed}: {allowed: adminOrOwningPhotographer, noop: true},
	{StatusCompleted, StatusCompleted}: {allowed: owningPhotographer, noop: true},
}

// CheckTransition проверяет переход бронирования в статус to от имени actor.
// ErrInvalidTransition - ребра нет в таблице, ErrPermissionDenied - актор не допущен,
// ErrResultsRequired - завершение без результатов.
func CheckTransition(b *Booking, to BookingStatus, actor Actor) (TransitionOutcome, error) {
	rule, ok := transitions[Transition{From: b.Status, To: to}]
	if !ok {
		return TransitionOutcome{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, to)
	}
	if !rule.allowed(actor, b) {
		return TransitionOutcome{}, fmt.Errorf("%w: %s cannot move booking %d from %s to %s",
			ErrPermissionDenied, actor.Role, b.ID, b.Status, to)
	}
	if rule.noop {
		return TransitionOutcome{Noop: true}, nil
	}
	if rule.requiresResults && !b.HasResults() {
		return TransitionOutcome{}, fmt.Errorf("%w: booking %d", ErrResultsRequired, b.ID)
	}
	return TransitionOutcome{
		Completes: to == StatusCompleted,
		Cancels:   to == StatusCancelled,
	}, nil
}

// CanEdit проверяет право на изменение полей, кроме статуса (доп. услуги, услуга).
// Администратор и фотограф бронирования могут редактировать в любом статусе,
// владелец-клиент только в PENDING.
func CanEdit(b *Booking, actor Actor) error {
	if adminOrOwningPhotographer(actor, b) {
		return nil
	}
	if actor.OwnsAsCustomer(b) {
		if b.Status != StatusPending {
			return fmt.Errorf("%w: customer may edit booking %d only while pending, it is %s", ErrNotEditable, b.ID, b.Status)
		}
		return nil
	}
	return fmt.Errorf("%w: %s cannot edit booking %d", ErrPermissionDenied, actor.Role, b.ID)
}
