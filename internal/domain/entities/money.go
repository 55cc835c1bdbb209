package entities

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidMoney = errors.New("invalid money amount")

// Money is a currency amount held as integer centavos.
//
// All arithmetic stays in int64; decimal is only used when crossing a text or
// float boundary (document store values, JSON, display).
type Money int64

const centsExponent = -2

func NewMoneyFromCents(cents int64) Money {
	return Money(cents)
}

// ParseMoney accepts plain decimal text and the formatted values admins type
// into the dashboard ("1,500.00", "₱ 2,000", "PHP 300.5").
func ParseMoney(s string) (Money, error) {
	clean := strings.TrimSpace(s)
	for _, prefix := range []string{"₱", "PHP", "php", "Php"} {
		clean = strings.TrimSpace(strings.TrimPrefix(clean, prefix))
	}
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.ReplaceAll(clean, " ", "")
	if clean == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidMoney)
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}
	m, err := fromDecimal(d)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", err, s)
	}
	return m, nil
}

// NewMoneyFromFloat rounds a float amount half away from zero to the nearest
// centavo. NaN, infinities and amounts beyond int64 centavos are rejected.
func NewMoneyFromFloat(f float64) (Money, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidMoney, f)
	}
	return fromDecimal(decimal.NewFromFloat(f))
}

// MoneyFromFloat is NewMoneyFromFloat for literals known to be in range. It
// panics otherwise.
func MoneyFromFloat(f float64) Money {
	m, err := NewMoneyFromFloat(f)
	if err != nil {
		panic(err)
	}
	return m
}

var (
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(math.MinInt64)
)

func fromDecimal(d decimal.Decimal) (Money, error) {
	cents := d.Round(2).Shift(2)
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return 0, fmt.Errorf("%w: out of range", ErrInvalidMoney)
	}
	return Money(cents.IntPart()), nil
}

func (m Money) Cents() int64 { return int64(m) }

func (m Money) Add(o Money) Money { return m + o }

func (m Money) Sub(o Money) Money { return m - o }

// Half splits an amount in two, rounding an odd centavo up.
func (m Money) Half() Money {
	if m < 0 {
		return -((-m + 1) / 2)
	}
	return (m + 1) / 2
}

func (m Money) IsZero() bool { return m == 0 }

func (m Money) IsNegative() bool { return m < 0 }

func (m Money) IsPositive() bool { return m > 0 }

func MinMoney(a, b Money) Money {
	if a < b {
		return a
	}
	return b
}

func MaxMoney(a, b Money) Money {
	if a > b {
		return a
	}
	return b
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), centsExponent)
}

// String renders the amount with exactly two decimals, e.g. "1500.00".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*m = 0
		return nil
	}
	raw = strings.Trim(raw, `"`)
	v, err := ParseMoney(raw)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
