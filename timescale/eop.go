package timescale

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/anupshinde/vediceph/errs"
)

// EOPRow is one daily row of the Earth-orientation-parameters table.
type EOPRow struct {
	MJDUTC float64
	DUT1   float64 // UT1-UTC, seconds
	PMX    float64 // polar motion x, arcseconds
	PMY    float64 // polar motion y, arcseconds
}

// EOP holds a parsed Earth-orientation-parameters table, sorted by
// strictly increasing MJD.
type EOP struct {
	rows []EOPRow
}

// column offsets for the IERS finals2000A.all fixed-column Bulletin A format.
const (
	colMJDStart  = 7
	colMJDEnd    = 15
	colPMXStart  = 18
	colPMXEnd    = 27
	colPMYStart  = 37
	colPMYEnd    = 46
	colDUT1Start = 58
	colDUT1End   = 68
)

// LoadEOP reads and parses an IERS finals2000A.all Earth-orientation file.
func LoadEOP(path string) (*EOP, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.KernelIo, path, err)
	}
	defer f.Close()
	return ParseEOP(f)
}

// ParseEOP parses an io.Reader carrying finals2000A.all-formatted text.
func ParseEOP(r io.Reader) (*EOP, error) {
	scanner := bufio.NewScanner(r)
	var rows []EOPRow
	for scanner.Scan() {
		line := scanner.Text()
		row, ok := parseEOPLine(line)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.Wrap(errs.EopParse, "reading EOP file", err)
	}
	if len(rows) == 0 {
		return nil, errs.New(errs.EopParse, "no usable rows found")
	}

	// Keep rows strictly increasing in MJD; a malformed or duplicate entry
	// is dropped rather than failing the whole table.
	filtered := rows[:1]
	for _, row := range rows[1:] {
		if row.MJDUTC > filtered[len(filtered)-1].MJDUTC {
			filtered = append(filtered, row)
		}
	}

	return &EOP{rows: filtered}, nil
}

func parseEOPLine(line string) (EOPRow, bool) {
	if len(line) < colDUT1End {
		return EOPRow{}, false
	}
	mjd, err := strconv.ParseFloat(strings.TrimSpace(line[colMJDStart:colMJDEnd]), 64)
	if err != nil {
		return EOPRow{}, false
	}
	dut1Str := strings.TrimSpace(line[colDUT1Start:colDUT1End])
	if dut1Str == "" {
		return EOPRow{}, false
	}
	dut1, err := strconv.ParseFloat(dut1Str, 64)
	if err != nil {
		return EOPRow{}, false
	}

	var pmx, pmy float64
	if pmxStr := strings.TrimSpace(line[colPMXStart:colPMXEnd]); pmxStr != "" {
		pmx, _ = strconv.ParseFloat(pmxStr, 64)
	}
	if pmyStr := strings.TrimSpace(line[colPMYStart:colPMYEnd]); pmyStr != "" {
		pmy, _ = strconv.ParseFloat(pmyStr, 64)
	}

	return EOPRow{MJDUTC: mjd, DUT1: dut1, PMX: pmx, PMY: pmy}, true
}

// Len returns the number of rows in the table.
func (e *EOP) Len() int { return len(e.rows) }

// Range returns the (first, last) MJD covered by the table.
func (e *EOP) Range() (float64, float64) {
	return e.rows[0].MJDUTC, e.rows[len(e.rows)-1].MJDUTC
}

// DUT1AtMJD linearly interpolates UT1-UTC between the two adjacent daily
// rows bracketing mjd. Returns OutOfRange if mjd is outside the table.
func (e *EOP) DUT1AtMJD(mjd float64) (float64, error) {
	first, last := e.Range()
	if mjd < first || mjd > last {
		return 0, errs.New(errs.OutOfRange, "MJD outside EOP table range")
	}

	// Binary search for the row at or before mjd.
	lo, hi := 0, len(e.rows)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if e.rows[mid].MJDUTC <= mjd {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if lo == len(e.rows)-1 {
		return e.rows[lo].DUT1, nil
	}
	a, b := e.rows[lo], e.rows[lo+1]
	frac := (mjd - a.MJDUTC) / (b.MJDUTC - a.MJDUTC)
	return a.DUT1 + frac*(b.DUT1-a.DUT1), nil
}
