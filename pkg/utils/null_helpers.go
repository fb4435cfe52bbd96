package utils

import (
	"time"

	"github.com/aarondl/null/v8"
)

// DateLayout — формат дат (purchase_date, scheduled_date и т.д.) на границе API.
const DateLayout = "2006-01-02"

// TimeToISOString форматирует временную метку в ISO-8601 для выдачи клиенту.
func TimeToISOString(t time.Time) string {
	return t.Format(time.RFC3339)
}

func NullTimeToDateString(nt null.Time) *string {
	if !nt.Valid {
		return nil
	}
	s := nt.Time.Format(DateLayout)
	return &s
}

func NullStringToPtr(ns null.String) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func NullFloatToPtr(nf null.Float64) *float64 {
	if !nf.Valid {
		return nil
	}
	return &nf.Float64
}

func NullIntToUint64Ptr(ni null.Int) *uint64 {
	if !ni.Valid {
		return nil
	}
	v := uint64(ni.Int)
	return &v
}

// ParseDatePtr разбирает дату формата DateLayout; nil или пустая строка
// трактуются как NULL.
func ParseDatePtr(s *string) (null.Time, error) {
	if s == nil || *s == "" {
		return null.Time{}, nil
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return null.Time{}, err
	}
	return null.TimeFrom(t), nil
}

func Uint64PtrToNullInt(p *uint64) null.Int {
	if p == nil {
		return null.Int{}
	}
	return null.IntFrom(int(*p))
}

func Float64PtrToNullFloat(p *float64) null.Float64 {
	if p == nil {
		return null.Float64{}
	}
	return null.Float64From(*p)
}

func StringPtrToNullString(p *string) null.String {
	if p == nil || *p == "" {
		return null.String{}
	}
	return null.StringFrom(*p)
}
