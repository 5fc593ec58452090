package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// ParseDateTime aceita "2006-01-02 15:04" e a forma datetime-local
// "2006-01-02T15:04"; o resultado é truncado para o segundo.
func ParseDateTime(s string) (time.Time, error) {
	loc := Location()

	t, err := time.ParseInLocation("2006-01-02 15:04", s, loc)
	if err != nil {
		t, err = time.ParseInLocation("2006-01-02T15:04", s, loc)
	}
	if err != nil {
		t, err = time.ParseInLocation("2006-01-02 15:04:05", s, loc)
	}
	if err != nil {
		return time.Time{}, err
	}

	return t.Truncate(time.Second), nil
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Location())
}

// DayBounds devolve [início, fim) do dia de t no fuso padrão.
func DayBounds(t time.Time) (time.Time, time.Time) {
	t = t.In(Location())
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}
