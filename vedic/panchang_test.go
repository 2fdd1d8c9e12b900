package vedic

import "testing"

func TestTithiOfBoundaries(t *testing.T) {
	cases := []struct {
		moon, sun float64
		wantIndex int
		wantPaksha Paksha
	}{
		{0, 0, 0, Shukla},
		{12, 0, 1, Shukla},
		{180, 0, 15, Krishna},
		{359, 0, 29, Krishna},
	}
	for _, c := range cases {
		got := TithiOf(c.moon, c.sun)
		if got.Index != c.wantIndex || got.Paksha != c.wantPaksha {
			t.Errorf("TithiOf(%v,%v) = %+v, want index %d paksha %v", c.moon, c.sun, got, c.wantIndex, c.wantPaksha)
		}
	}
}

func TestYogaOfWraps(t *testing.T) {
	got := YogaOf(350, 350) // sum wraps past 360 twice
	if got < 0 || got > 26 {
		t.Errorf("YogaOf out of range: %v", got)
	}
}

func TestKaranaNameFixedAndMovable(t *testing.T) {
	if KaranaName(0) != "Kimstughna" {
		t.Errorf("KaranaName(0) = %q, want Kimstughna", KaranaName(0))
	}
	if KaranaName(59) != "Naga" {
		t.Errorf("KaranaName(59) = %q, want Naga", KaranaName(59))
	}
	if KaranaName(1) != "Bava" {
		t.Errorf("KaranaName(1) = %q, want Bava", KaranaName(1))
	}
}

func TestVaarOfWeekday(t *testing.T) {
	// J2000.0 (2000-01-01 12:00) was a Saturday.
	got := VaarOf(J2000JD)
	if got != 6 {
		t.Errorf("VaarOf(J2000) = %v (%s), want 6 (Shanivar)", got, got)
	}
}

func TestMasaOfMatchesRashi(t *testing.T) {
	got := MasaOf(45.0)
	if Rashi(got) != Rashi(1) {
		t.Errorf("MasaOf(45) = %v, want rashi 1", got)
	}
}

func TestGhatikaHoraClampWithinRange(t *testing.T) {
	sunrise, nextSunrise := 100.0, 101.0
	g := GhatikaOf(100.5, sunrise, nextSunrise)
	if g < 0 || g > 59 {
		t.Errorf("GhatikaOf out of range: %d", g)
	}
	h := HoraOf(100.5, sunrise, nextSunrise)
	if h < 0 || h > 23 {
		t.Errorf("HoraOf out of range: %d", h)
	}
}
