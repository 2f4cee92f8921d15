package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("некорректные данные")
	ErrNotFound   = errors.New("не найдено")
	ErrCapacity   = errors.New("нет свободных мест")
	ErrForbidden  = errors.New("доступ запрещен")
	ErrConflict   = errors.New("конфликт данных")
)

// ErrLateCancellation is returned when leaving a game inside the
// LateCancelWindow without accepting the reliability penalty.
var ErrLateCancellation = fmt.Errorf("%w: отмена менее чем за 4 часа снижает рейтинг надежности", ErrValidation)
