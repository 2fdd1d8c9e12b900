package search

import (
	"testing"

	"github.com/anupshinde/vediceph/errs"
	"github.com/anupshinde/vediceph/spk"
)

func TestFindStationsStaticKernelNoEvents(t *testing.T) {
	eng := staticTestEngine(t)
	events, err := FindStations(eng, spk.Mars, 2451545.0, 2451605.0)
	if err != nil {
		t.Fatalf("FindStations: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no station events for a zero-velocity kernel, got %d", len(events))
	}
}

func TestNextStationExhaustedOnStaticKernel(t *testing.T) {
	eng := staticTestEngine(t)
	_, err := NextStation(eng, spk.Mars, 2451545.0)
	if err == nil {
		t.Fatal("expected SearchExhausted error")
	}
	if !errs.Is(err, errs.SearchExhausted) {
		t.Errorf("expected SearchExhausted, got %v", err)
	}
}
