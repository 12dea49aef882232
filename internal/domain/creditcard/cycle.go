package creditcard

import "time"

// DueDatePolicy decides what happens when the due day does not exist in the
// invoice month (due day 31 in April, 30 in February).
type DueDatePolicy string

const (
	DueDateClamp    DueDatePolicy = "clamp"
	DueDateRollover DueDatePolicy = "rollover"
)

func (p DueDatePolicy) IsValid() bool {
	return p == DueDateClamp || p == DueDateRollover
}

type Cycle struct {
	Month int
	Year  int
}

// ResolveCycle maps a purchase date to the invoice month it is billed in.
// Purchases on or after the closing day go to the next month.
func ResolveCycle(purchaseDate time.Time, closingDay int) Cycle {
	month := int(purchaseDate.Month())
	year := purchaseDate.Year()
	if purchaseDate.Day() >= closingDay {
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	return Cycle{Month: month, Year: year}
}

func ComputeDueDate(c Cycle, dueDay int, policy DueDatePolicy) time.Time {
	if policy == DueDateRollover {
		return time.Date(c.Year, time.Month(c.Month), dueDay, 0, 0, 0, 0, time.UTC)
	}
	return clampedDate(c.Year, c.Month, dueDay)
}

// AddMonths moves a date n calendar months forward keeping the day of month,
// clamped to the length of the target month.
func AddMonths(d time.Time, n int) time.Time {
	total := int(d.Month()) - 1 + n
	year := d.Year() + floorDiv(total, 12)
	month := total - floorDiv(total, 12)*12 + 1
	return clampedDate(year, month, d.Day())
}

func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func clampedDate(year, month, day int) time.Time {
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
