package search

import "github.com/anupshinde/vediceph/errs"

// DefaultSearchWindowDays bounds how far next/prev searches look from their
// anchor before giving up.
const DefaultSearchWindowDays = 400.0

// NextDiscreteEvent returns the first discrete-event transition strictly
// after anchorJD, searching forward up to windowDays. windowDays <= 0 uses
// DefaultSearchWindowDays.
func NextDiscreteEvent(anchorJD, stepDays, windowDays float64, f func(float64) int) (DiscreteEvent, error) {
	if windowDays <= 0 {
		windowDays = DefaultSearchWindowDays
	}
	events, err := FindDiscrete(anchorJD, anchorJD+windowDays, stepDays, f, 0)
	if err != nil {
		return DiscreteEvent{}, err
	}
	for _, e := range events {
		if e.TDBJD > anchorJD {
			return e, nil
		}
	}
	return DiscreteEvent{}, errs.New(errs.SearchExhausted, "no event found within search window")
}

// PrevDiscreteEvent returns the last discrete-event transition strictly
// before anchorJD, searching backward up to windowDays.
func PrevDiscreteEvent(anchorJD, stepDays, windowDays float64, f func(float64) int) (DiscreteEvent, error) {
	if windowDays <= 0 {
		windowDays = DefaultSearchWindowDays
	}
	events, err := FindDiscrete(anchorJD-windowDays, anchorJD, stepDays, f, 0)
	if err != nil {
		return DiscreteEvent{}, err
	}
	var best DiscreteEvent
	found := false
	for _, e := range events {
		if e.TDBJD < anchorJD && (!found || e.TDBJD > best.TDBJD) {
			best = e
			found = true
		}
	}
	if !found {
		return DiscreteEvent{}, errs.New(errs.SearchExhausted, "no event found within search window")
	}
	return best, nil
}

// NextExtremum returns the first local extremum strictly after anchorJD
// among the results of find (FindMaxima or FindMinima), searching forward
// up to windowDays.
func NextExtremum(anchorJD, stepDays, windowDays float64, f func(float64) float64, find func(float64, float64, float64, func(float64) float64, float64) ([]Extremum, error)) (Extremum, error) {
	if windowDays <= 0 {
		windowDays = DefaultSearchWindowDays
	}
	results, err := find(anchorJD, anchorJD+windowDays, stepDays, f, 0)
	if err != nil {
		return Extremum{}, err
	}
	for _, r := range results {
		if r.TDBJD > anchorJD {
			return r, nil
		}
	}
	return Extremum{}, errs.New(errs.SearchExhausted, "no extremum found within search window")
}

// PrevExtremum returns the last local extremum strictly before anchorJD.
func PrevExtremum(anchorJD, stepDays, windowDays float64, f func(float64) float64, find func(float64, float64, float64, func(float64) float64, float64) ([]Extremum, error)) (Extremum, error) {
	if windowDays <= 0 {
		windowDays = DefaultSearchWindowDays
	}
	results, err := find(anchorJD-windowDays, anchorJD, stepDays, f, 0)
	if err != nil {
		return Extremum{}, err
	}
	var best Extremum
	found := false
	for _, r := range results {
		if r.TDBJD < anchorJD && (!found || r.TDBJD > best.TDBJD) {
			best = r
			found = true
		}
	}
	if !found {
		return Extremum{}, errs.New(errs.SearchExhausted, "no extremum found within search window")
	}
	return best, nil
}
