package service

import "errors"

var (
	// ErrCorruptedData: несовпадение id, отсутствующая запись или чужая запись при изменении.
	// Сообщение намеренно одинаковое для всех случаев.
	ErrCorruptedData = errors.New("Corrupted data.")
	// ErrTooManyResults: поиск нашёл больше записей, чем помещается на страницу.
	ErrTooManyResults = errors.New("Too many results. Please narrow your search.")
	// ErrStuffNotFound: запрошенная запись не найдена.
	ErrStuffNotFound = &NotFoundError{Message: "Stuff not found."}
)

// ValidationError: в присланной модели не заполнено обязательное поле.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError: запрошенный ресурс не существует (отдаётся как 404).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }
