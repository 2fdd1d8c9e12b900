package spk

// NAIF body ID constants used in JPL ephemeris files.
const (
	SSB               = 0   // Solar System Barycenter
	MercuryBarycenter = 1
	VenusBarycenter   = 2
	EarthMoonBary     = 3 // Earth-Moon Barycenter
	MarsBarycenter    = 4
	JupiterBarycenter = 5
	SaturnBarycenter  = 6
	UranusBarycenter  = 7
	NeptuneBarycenter = 8
	PlutoBarycenter   = 9
	Sun               = 10
	Moon              = 301
	Earth             = 399
	Mercury           = 199
	Venus             = 299
	Mars              = 499
	Jupiter           = 599
	Saturn            = 699
)

// barycenterFallback maps a body with no segment of its own to the
// barycenter that stands in for it when a kernel only carries barycenter
// segments (common for the outer planets in small DE44x-style kernels).
var barycenterFallback = map[int]int{
	Mercury: MercuryBarycenter,
	Venus:   VenusBarycenter,
	Earth:   EarthMoonBary,
	Moon:    EarthMoonBary,
	Mars:    MarsBarycenter,
	Jupiter: JupiterBarycenter,
	Saturn:  SaturnBarycenter,
}
