package user

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout - формат даты без времени.
const DateLayout = "2006-01-02"

// Date - календарная дата (дата рождения, дата постановки диагноза).
// При разборе JSON принимает как "2006-01-02", так и RFC 3339. Пустая строка дает нулевую дату,
// которая означает, что дата не передана.
type Date struct {
	time.Time
}

// NewDate - создает дату, отбрасывая время суток.
func NewDate(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON - реализует json.Marshaler. Нулевая дата записывается пустой строкой.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.UTC().Format(DateLayout))
}

// UnmarshalJSON - реализует json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string, %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		*d = NewDate(t)
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q", s)
	}
	*d = NewDate(t)
	return nil
}

// DateFromPtr - преобразует необязательное время из хранилища в необязательную дату.
func DateFromPtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := NewDate(*t)
	return &d
}

// OrNil - nil для отсутствующей или нулевой даты.
func (d *Date) OrNil() *Date {
	if d == nil || d.IsZero() {
		return nil
	}
	return d
}

// TimePtr - обратное преобразование для записи в хранилище.
func (d *Date) TimePtr() *time.Time {
	if d.OrNil() == nil {
		return nil
	}
	t := d.Time
	return &t
}
