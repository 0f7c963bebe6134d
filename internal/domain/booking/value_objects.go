package booking

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const hoursPerDay = 24

// StayRange is a half-open range of calendar dates: [checkIn, checkOut).
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in := clock.DateOf(checkIn)
	out := clock.DateOf(checkOut)
	if !out.After(in) {
		return StayRange{}, ErrInvalidDateRange
	}
	return StayRange{checkIn: in, checkOut: out}, nil
}

func (s StayRange) CheckIn() time.Time  { return s.checkIn }
func (s StayRange) CheckOut() time.Time { return s.checkOut }

func (s StayRange) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / hoursPerDay)
}

// ContainsNight reports whether the night starting on date is inside the stay.
func (s StayRange) ContainsNight(date time.Time) bool {
	d := clock.DateOf(date)
	return !d.Before(s.checkIn) && d.Before(s.checkOut)
}

func (s StayRange) String() string {
	return fmt.Sprintf("[%s,%s)", s.checkIn.Format(time.DateOnly), s.checkOut.Format(time.DateOnly))
}

// Money is an amount in minor currency units (poisha, cents).
type Money struct {
	minor int64
}

func NewMoney(minor int64) Money {
	return Money{minor: minor}
}

// MoneyFromMajor rounds a major-unit amount such as 19.999 to the nearest minor unit.
// Amounts that do not fit in int64 minor units are rejected.
func MoneyFromMajor(v float64) (Money, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Money{}, ErrInvalidAmount
	}
	minor := math.Round(v * 100)
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range
	if minor >= math.MaxInt64 || minor < math.MinInt64 {
		return Money{}, errs.Wrapf(ErrInvalidAmount, "%g is out of range", v)
	}
	return Money{minor: int64(minor)}, nil
}

func ParseMoney(s string) (Money, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return MoneyFromMajor(v)
}

func (m Money) Minor() int64 {
	return m.minor
}

func (m Money) Major() float64 {
	return float64(m.minor) / 100.0
}

func (m Money) IsPositive() bool {
	return m.minor > 0
}

func (m Money) Add(other Money) (Money, error) {
	sum := m.minor + other.minor
	if (other.minor > 0 && sum < m.minor) || (other.minor < 0 && sum > m.minor) {
		return Money{}, errs.Wrapf(ErrInvalidAmount, "%s + %s overflows", m, other)
	}
	return Money{minor: sum}, nil
}

func (m Money) Times(n int) (Money, error) {
	factor := int64(n)
	product := m.minor * factor
	if factor != 0 && (product/factor != m.minor || (factor == -1 && m.minor == math.MinInt64)) {
		return Money{}, errs.Wrapf(ErrInvalidAmount, "%s x %d overflows", m, n)
	}
	return Money{minor: product}, nil
}

func (m Money) String() string {
	sign := ""
	abs := uint64(m.minor)
	if m.minor < 0 {
		sign = "-"
		abs = -abs
	}
	return fmt.Sprintf("%s%d.%02d", sign, abs/100, abs%100)
}

type ContactInfo struct {
	name    string
	email   string
	phone   string
	address string
	city    string
}

func NewContactInfo(name, email, phone, address, city string) (ContactInfo, error) {
	c := ContactInfo{
		name:    strings.TrimSpace(name),
		email:   strings.TrimSpace(email),
		phone:   strings.TrimSpace(phone),
		address: strings.TrimSpace(address),
		city:    strings.TrimSpace(city),
	}
	if c.name == "" || c.email == "" || c.phone == "" {
		return ContactInfo{}, ErrInvalidContact
	}
	return c, nil
}

func (c ContactInfo) Name() string    { return c.name }
func (c ContactInfo) Email() string   { return c.email }
func (c ContactInfo) Phone() string   { return c.phone }
func (c ContactInfo) Address() string { return c.address }
func (c ContactInfo) City() string    { return c.city }

// LineItem is one room with its stay and nightly price.
type LineItem struct {
	roomID uuid.UUID
	stay   StayRange
	price  Money
}

func NewLineItem(roomID uuid.UUID, stay StayRange, price Money) (LineItem, error) {
	if roomID == uuid.Nil {
		return LineItem{}, ErrRoomRequired
	}
	if !price.IsPositive() {
		return LineItem{}, ErrInvalidPrice
	}
	if _, err := price.Times(stay.Nights()); err != nil {
		return LineItem{}, errs.Mark(err, ErrInvalidPrice)
	}
	return LineItem{roomID: roomID, stay: stay, price: price}, nil
}

func (li LineItem) RoomID() uuid.UUID { return li.roomID }
func (li LineItem) Stay() StayRange   { return li.stay }
func (li LineItem) Price() Money      { return li.price }

// Subtotal cannot overflow: NewLineItem rejects prices whose subtotal does not fit.
func (li LineItem) Subtotal() Money {
	sub, _ := li.price.Times(li.stay.Nights())
	return sub
}
