package service

import (
	"StuffKeeper/internal/model"
	"StuffKeeper/internal/model/view"
	"time"

	"github.com/google/uuid"
)

// formatTime переводит время в строку хранения (UTC, фиксированная ширина).
func formatTime(t time.Time) string {
	return t.UTC().Format(view.TimeLayout)
}

// parseTime разбирает строку хранения. Пустая или битая строка: nil.
func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

func userToView(u *model.User) *view.User {
	if u == nil {
		return nil
	}
	return &view.User{
		ID:         u.ID,
		Name:       u.Name,
		GivenName:  u.GivenName,
		FamilyName: u.FamilyName,
		Email:      u.Email,
		CreatedAt:  parseTime(u.CreatedAt),
		UpdatedAt:  parseTime(u.UpdatedAt),
	}
}

func stuffToView(s *model.Stuff) *view.Datum {
	if s == nil {
		return nil
	}
	return &view.Datum{
		ID:          s.ID,
		Label:       s.Label,
		Description: s.Description,
		OtherInfo:   s.OtherInfo,
		CreatedAt:   parseTime(s.CreatedAt),
		UpdatedAt:   parseTime(s.UpdatedAt),
		User:        userToView(s.User),
	}
}

func displayName(given, family string) string {
	return given + " " + family
}

// newUserRecord: id пользователя приходит от клиента, сервер его не генерирует.
func newUserRecord(in *view.User, now time.Time) *model.User {
	return &model.User{
		ID:         in.ID,
		Name:       displayName(in.GivenName, in.FamilyName),
		GivenName:  in.GivenName,
		FamilyName: in.FamilyName,
		Email:      in.Email,
		CreatedAt:  formatTime(now),
	}
}

func applyUserUpdate(in *view.User, rec *model.User, now time.Time) {
	rec.ID = in.ID
	rec.Name = displayName(in.GivenName, in.FamilyName)
	rec.GivenName = in.GivenName
	rec.FamilyName = in.FamilyName
	rec.Email = in.Email
	rec.UpdatedAt = formatTime(now)
}

func newStuffRecord(in *view.Datum, now time.Time) *model.Stuff {
	ts := formatTime(now)
	return &model.Stuff{
		ID:          uuid.NewString(),
		Label:       in.Label,
		Description: in.Description,
		OtherInfo:   in.OtherInfo,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

// applyStuffUpdate не трогает ID: у обновляемой записи остаётся её собственный.
func applyStuffUpdate(in *view.Datum, rec *model.Stuff, now time.Time) {
	rec.Label = in.Label
	rec.Description = in.Description
	rec.OtherInfo = in.OtherInfo
	rec.UpdatedAt = formatTime(now)
}

func toPage[R any, V any](records []R, toView func(*R) *V, page int, total int64, totalPages int) view.Page[V] {
	items := make([]V, 0, len(records))
	for i := range records {
		if v := toView(&records[i]); v != nil {
			items = append(items, *v)
		}
	}
	return view.Page[V]{
		Page:       page,
		PerPage:    ItemsPerPage,
		Total:      total,
		TotalPages: totalPages,
		Items:      items,
	}
}
