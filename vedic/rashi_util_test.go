package vedic

import "testing"

func TestSignTypeOf(t *testing.T) {
	cases := []struct {
		rashi int
		want  SignType
	}{
		{0, Chara}, {1, Sthira}, {2, Dvisvabhava},
		{3, Chara}, {4, Sthira}, {5, Dvisvabhava},
		{11, Dvisvabhava},
	}
	for _, c := range cases {
		if got := SignTypeOf(c.rashi); got != c.want {
			t.Errorf("SignTypeOf(%d) = %v, want %v", c.rashi, got, c.want)
		}
	}
}

func TestIsOddSign(t *testing.T) {
	if !IsOddSign(0) {
		t.Errorf("Mesha (0) should be an odd sign")
	}
	if IsOddSign(1) {
		t.Errorf("Vrishabha (1) should be an even sign")
	}
}

func TestCountSignsForwardWrap(t *testing.T) {
	if got := CountSignsForward(10, 1); got != 4 {
		t.Errorf("CountSignsForward(10,1) = %d, want 4", got)
	}
	if got := CountSignsForward(3, 3); got != 1 {
		t.Errorf("CountSignsForward(3,3) = %d, want 1", got)
	}
}

func TestCountSignsReverseWrap(t *testing.T) {
	if got := CountSignsReverse(1, 10); got != 4 {
		t.Errorf("CountSignsReverse(1,10) = %d, want 4", got)
	}
}

func TestJumpRashiWraps(t *testing.T) {
	if got := JumpRashi(11, 1); got != 0 {
		t.Errorf("JumpRashi(11,1) = %d, want 0", got)
	}
	if got := JumpRashi(0, -1); got != 11 {
		t.Errorf("JumpRashi(0,-1) = %d, want 11", got)
	}
}
