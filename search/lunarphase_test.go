package search

import (
	"testing"

	"github.com/anupshinde/vediceph/errs"
)

func TestFindMoonPhasesStaticKernelNoEvents(t *testing.T) {
	eng := staticTestEngine(t)
	events, err := FindMoonPhases(eng, 2451545.0, 2451605.0)
	if err != nil {
		t.Fatalf("FindMoonPhases: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no phase events for a static kernel, got %d", len(events))
	}
}

func TestNextMoonPhaseExhaustedOnStaticKernel(t *testing.T) {
	eng := staticTestEngine(t)
	_, err := NextMoonPhase(eng, 2451545.0)
	if err == nil {
		t.Fatal("expected SearchExhausted error")
	}
	if !errs.Is(err, errs.SearchExhausted) {
		t.Errorf("expected SearchExhausted, got %v", err)
	}
}

func TestFindSeasonsStaticKernelNoEvents(t *testing.T) {
	eng := staticTestEngine(t)
	events, err := FindSeasons(eng, 2451545.0, 2451605.0)
	if err != nil {
		t.Fatalf("FindSeasons: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no season events for a static kernel, got %d", len(events))
	}
}
