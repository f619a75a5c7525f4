// Package view содержит модели, которые сервер отдаёт и принимает по HTTP.
package view

import "time"

// TimeLayout: формат хранения меток времени: всегда UTC, фиксированная ширина,
// поэтому строки сортируются так же, как время.
const TimeLayout = "2006-01-02T15:04:05.0000000Z07:00"

// User: пользователь в API.
type User struct {
	ID         string     `json:"id" validate:"notblank"`
	Name       string     `json:"name"`
	GivenName  string     `json:"givenName" validate:"notblank"`
	FamilyName string     `json:"familyName" validate:"notblank"`
	Email      string     `json:"email" validate:"notblank"`
	CreatedAt  *time.Time `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt"`
}

// Datum: запись (stuff) в API вместе с владельцем.
type Datum struct {
	ID          string     `json:"id"`
	Label       string     `json:"label" validate:"notblank"`
	Description string     `json:"description"`
	OtherInfo   string     `json:"otherInfo"`
	CreatedAt   *time.Time `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
	User        *User      `json:"user" validate:"-"`
}

// Page: страница коллекции.
type Page[V any] struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Items      []V   `json:"items"`
}
