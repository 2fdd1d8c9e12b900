package timescale

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/anupshinde/vediceph/errs"
)

// LeapSecondEntry is one row of the DELTET/DELTA_AT table: the TAI-UTC
// offset in seconds that took effect at IntroducedUTC seconds past J2000
// (UTC).
type LeapSecondEntry struct {
	DeltaAT       float64
	IntroducedUTC float64 // seconds past J2000, UTC axis
}

// LSK holds a parsed leap-second kernel: an ordered table of TAI-UTC
// offsets and their introduction epochs.
type LSK struct {
	entries []LeapSecondEntry
}

var monthAbbrev = map[string]int{
	"JAN": 1, "FEB": 2, "MAR": 3, "APR": 4, "MAY": 5, "JUN": 6,
	"JUL": 7, "AUG": 8, "SEP": 9, "OCT": 10, "NOV": 11, "DEC": 12,
}

// LoadLSK reads and parses a SPICE leap-second kernel (naif0012.tls format).
func LoadLSK(path string) (*LSK, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.KernelIo, path, err)
	}
	return ParseLSK(string(data))
}

// ParseLSK parses the textual contents of a leap-second kernel, extracting
// the DELTET/DELTA_AT list. Unknown keys (DELTET/DELTA_T_A, DELTET/K, ...)
// are ignored.
func ParseLSK(content string) (*LSK, error) {
	idx := strings.Index(content, "DELTET/DELTA_AT")
	if idx < 0 {
		return nil, errs.New(errs.LskParse, "DELTET/DELTA_AT not found")
	}
	rest := content[idx:]

	open := strings.Index(rest, "(")
	if open < 0 {
		return nil, errs.New(errs.LskParse, "DELTET/DELTA_AT missing opening paren")
	}
	close := strings.Index(rest, ")")
	if close < 0 || close < open {
		return nil, errs.New(errs.LskParse, "DELTET/DELTA_AT missing closing paren")
	}

	body := rest[open+1 : close]
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r' || r == '\t' || r == ' '
	})

	var entries []LeapSecondEntry
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		if f == "" {
			continue
		}
		deltaAT, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errs.Wrap(errs.LskParse, fmt.Sprintf("parsing delta_AT value %q", f), err)
		}
		i++
		if i >= len(fields) {
			return nil, errs.New(errs.LskParse, "delta_AT value without matching date")
		}
		dateTok := fields[i]
		utc, err := parseLskDate(dateTok)
		if err != nil {
			return nil, errs.Wrap(errs.LskParse, fmt.Sprintf("parsing date token %q", dateTok), err)
		}
		entries = append(entries, LeapSecondEntry{DeltaAT: deltaAT, IntroducedUTC: utc})
	}

	if len(entries) == 0 {
		return nil, errs.New(errs.LskParse, "DELTET/DELTA_AT list is empty")
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].IntroducedUTC < entries[j].IntroducedUTC
	})

	return &LSK{entries: entries}, nil
}

// parseLskDate parses a token like "@1972-JAN-1" into UTC seconds past J2000.
func parseLskDate(tok string) (float64, error) {
	tok = strings.TrimPrefix(tok, "@")
	parts := strings.Split(tok, "-")
	if len(parts) != 3 {
		return 0, fmt.Errorf("unrecognized date format %q", tok)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	month, ok := monthAbbrev[strings.ToUpper(parts[1])]
	if !ok {
		return 0, fmt.Errorf("unrecognized month %q", parts[1])
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, err
	}
	jd := CalendarToJD(year, month, float64(day))
	return JDToTDBSeconds(jd), nil
}

// Entries returns the parsed leap-second table, ordered by introduction epoch.
func (l *LSK) Entries() []LeapSecondEntry {
	return l.entries
}

// deltaATAt returns the TAI-UTC offset in effect at utcSeconds (seconds
// past J2000, UTC axis), via binary search over introduction epochs.
func (l *LSK) deltaATAt(utcSeconds float64) (float64, error) {
	if len(l.entries) == 0 || utcSeconds < l.entries[0].IntroducedUTC {
		return 0, errs.New(errs.Pre1972Utc, "epoch precedes LSK's first leap-second entry")
	}
	i := sort.Search(len(l.entries), func(i int) bool {
		return l.entries[i].IntroducedUTC > utcSeconds
	})
	return l.entries[i-1].DeltaAT, nil
}

// UTCToTDB converts UTC seconds past J2000 to TDB seconds past J2000:
// TAI = UTC + deltaAT, TT = TAI + 32.184s, TDB = TT + periodic series.
func (l *LSK) UTCToTDB(utcSeconds float64) (float64, error) {
	deltaAT, err := l.deltaATAt(utcSeconds)
	if err != nil {
		return 0, err
	}
	tai := utcSeconds + deltaAT
	tt := tai + TTMinusTAI
	ttJD := TDBSecondsToJD(tt)
	return tt + TDBMinusTT(ttJD), nil
}

// TDBToUTC is the inverse of UTCToTDB, solved by fixed-point iteration
// against the forward map: a first approximation from TDB ≈ TT, then two
// refinement passes (TDB-TT varies by at most ~2ms, so one pass already
// converges to sub-microsecond accuracy; the second is a safety margin).
func (l *LSK) TDBToUTC(tdbSeconds float64) (float64, error) {
	// First approximation: treat TDB ≈ TT (periodic series amplitude < 2ms).
	ttJD := TDBSecondsToJD(tdbSeconds)
	tt := tdbSeconds - TDBMinusTT(ttJD)

	for iter := 0; iter < 2; iter++ {
		ttJD = TDBSecondsToJD(tt)
		tt = tdbSeconds - TDBMinusTT(ttJD)
	}

	tai := tt - TTMinusTAI

	// deltaAT is a function of UTC, but within 1e-6s of TAI for the binary
	// search window; resolve iteratively in case of a leap-second boundary.
	utc := tai
	for iter := 0; iter < 2; iter++ {
		deltaAT, err := l.deltaATAt(utc)
		if err != nil {
			return 0, err
		}
		utc = tai - deltaAT
	}
	return utc, nil
}
