package announce

import (
	"fmt"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// weekdayNames is the fixed weekday lookup used by the announcement header.
var weekdayNames = map[time.Weekday]string{
	time.Saturday:  "شنبه",
	time.Sunday:    "یک‌شنبه",
	time.Monday:    "دوشنبه",
	time.Tuesday:   "سه‌شنبه",
	time.Wednesday: "چهارشنبه",
	time.Thursday:  "پنج‌شنبه",
	time.Friday:    "جمعه",
}

// jalaliHeader converts t to the Jalali calendar and returns the localized
// weekday name and the date formatted as YYYY/MM/DD.
func jalaliHeader(t time.Time) (weekday, date string) {
	pt := ptime.New(t)
	weekday = weekdayNames[t.Weekday()]
	date = fmt.Sprintf("%04d/%02d/%02d", pt.Year(), int(pt.Month()), pt.Day())
	return weekday, date
}
