package fat12

import (
	"time"
)

// parseDOSDate decodes a directory entry date stamp:
//  Bits 0–4: Day of month, 1-31.
//  Bits 5–8: Month of year, 1-12.
//  Bits 9–15: Count of years from 1980, 0-127.
// The result is at midnight UTC.
//
// Day or month 0 are invalid. time.Time{} is returned for them so that
// time.Time.IsZero() can be used to detect an unset date.
// A month above 12 rolls over into the next year.
func parseDOSDate(input uint16) time.Time {
	day := input & 0x1F
	month := input & 0x1E0 >> 5
	year := input & 0xFE00 >> 9

	if day == 0 || month == 0 {
		return time.Time{}
	}

	return time.Date(1980+int(year), time.Month(month), int(day), 0, 0, 0, 0, time.UTC)
}

// parseDOSTime decodes a directory entry time stamp with 2 second granularity:
//  Bits 0–4: 2-second count, 0-29.
//  Bits 5–10: Minutes, 0-59.
//  Bits 11–15: Hours, 0-23.
// Only hour, minute and second of the result are meaningful.
// Out of range values are capped at 23:59:59.
func parseDOSTime(input uint16) (hour, minute, sec int) {
	sec = int(input&0x1F) * 2
	minute = int(input & 0x7E0 >> 5)
	hour = int(input & 0xF800 >> 11)

	if hour > 23 || minute > 59 || sec > 59 {
		return 23, 59, 59
	}
	return hour, minute, sec
}

// dosTimestamp combines a date, a time and the optional 10 ms unit count.
// It returns time.Time{} if the date is invalid.
func dosTimestamp(date, clock uint16, tenths uint8) time.Time {
	d := parseDOSDate(date)
	if d.IsZero() {
		return time.Time{}
	}

	hour, minute, sec := parseDOSTime(clock)
	// tenths counts 10 ms units in the range 0-199 and may add a second.
	extra := time.Duration(tenths%200) * 10 * time.Millisecond

	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, sec, 0, time.UTC).Add(extra)
}
