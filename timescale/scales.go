package timescale

import "math"

// TTMinusTAI is the fixed offset between Terrestrial Time and International
// Atomic Time, in seconds.
const TTMinusTAI = 32.184

// TDBMinusTT returns TDB-TT in seconds for a TDB (or, to sub-microsecond
// accuracy, TT) Julian date. Fairhead & Bretagnon approximation (USNO
// Circular 179 eq. 2.6), matching SPICE to within a few microseconds over
// 1900-2100.
func TDBMinusTT(jd float64) float64 {
	t := (jd - J2000JD) / 36525.0
	return 0.001657*math.Sin(628.3076*t+6.2401) +
		0.000022*math.Sin(575.3385*t+4.2970) +
		0.000014*math.Sin(1256.6152*t+6.1969) +
		0.000005*math.Sin(606.9777*t+4.0212) +
		0.000005*math.Sin(52.9691*t+0.4444) +
		0.000002*math.Sin(21.3299*t+5.5431) +
		0.000010*t*math.Sin(628.3076*t+4.2490)
}

// UTCTime is a civil calendar instant with fractional seconds.
type UTCTime struct {
	Year, Month, Day, Hour, Minute int
	Second                         float64
}

// ToTDBSeconds converts the civil time to TDB seconds past J2000 using the
// leap-second kernel lsk for the UTC→TAI step.
func (u UTCTime) ToTDBSeconds(lsk *LSK) (float64, error) {
	dayFrac := float64(u.Day) + (float64(u.Hour)*3600+float64(u.Minute)*60+u.Second)/SecondsPerDay
	jdUTC := CalendarToJD(u.Year, u.Month, dayFrac)
	utcSeconds := JDToTDBSeconds(jdUTC) // seconds past J2000 on the UTC axis

	tdbSeconds, err := lsk.UTCToTDB(utcSeconds)
	if err != nil {
		return 0, err
	}
	return tdbSeconds, nil
}

// TDBSecondsToUTCTime is the inverse of UTCTime.ToTDBSeconds.
func TDBSecondsToUTCTime(tdbSeconds float64, lsk *LSK) (UTCTime, error) {
	utcSeconds, err := lsk.TDBToUTC(tdbSeconds)
	if err != nil {
		return UTCTime{}, err
	}

	jdUTC := TDBSecondsToJD(utcSeconds)
	year, month, dayFrac := JDToCalendar(jdUTC)

	day := int(dayFrac)
	rem := (dayFrac - float64(day)) * SecondsPerDay
	hour := int(rem / 3600)
	rem -= float64(hour) * 3600
	minute := int(rem / 60)
	sec := rem - float64(minute)*60

	return UTCTime{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: sec}, nil
}

// UTCToUT1Seconds converts UTC seconds past J2000 to UT1 seconds past J2000
// using eop's DUT1 interpolation.
func UTCToUT1Seconds(utcSeconds float64, eop *EOP) (float64, error) {
	jdUTC := TDBSecondsToJD(utcSeconds)
	mjd := jdUTC - 2400000.5
	dut1, err := eop.DUT1AtMJD(mjd)
	if err != nil {
		return 0, err
	}
	return utcSeconds + dut1, nil
}
