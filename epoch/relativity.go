package epoch

import (
	"math"

	"github.com/chrisconley/chronon/duration"
)

// TDB - TT follows the Fairhead and Bretagnon leading term:
//
//	g(s) = 1.658e-3 · sin(G + 1.67e-2 · sin G),  G = 357.528° + 1.990910018065731e-7 · s
//
// with s the seconds past J2000 on the TDB clock.
const (
	tdbAmplitude     = 1.658e-3
	tdbEccentricity  = 1.67e-2
	tdbMeanAnomaly   = 2 * math.Pi / 360 * 357.528
	tdbMeanMotion    = 1.990910018065731e-7
	naifMeanAnomaly  = 6.239996
	naifMeanMotion   = 1.99096871e-7
	naifEccentricity = 1.671e-2
	naifAmplitude    = 1.657e-3
)

func tdbMinusTT(seconds float64) float64 {
	g := tdbMeanAnomaly + tdbMeanMotion*seconds
	return tdbAmplitude * math.Sin(g+tdbEccentricity*math.Sin(g))
}

// etMinusTT is the NAIF SPICE formula, ET - TT = K · sin(E) with
// E = M + EB · sin(M) and M = M0 + M1 · s, s in ET seconds past J2000.
func etMinusTT(seconds float64) float64 {
	m := naifMeanAnomaly + naifMeanMotion*seconds
	return naifAmplitude * math.Sin(m+naifEccentricity*math.Sin(m))
}

// periodicForward returns the periodic term to add to a TT reading,
// counted from J2000, to get the TDB or ET reading. The term is a function
// of the target clock, so it is evaluated at TT + f(TT + f(TT)); one more
// substitution would change it by less than 1e-15 s.
func periodicForward(f func(float64) float64, ttSinceJ2000 duration.Duration) duration.Duration {
	s := ttSinceJ2000.ToSeconds()
	return duration.FromSeconds(f(s + f(s+f(s))))
}

// periodicInverse returns the term to subtract from a TDB or ET reading,
// counted from J2000, to get TT.
func periodicInverse(f func(float64) float64, sinceJ2000 duration.Duration) duration.Duration {
	return duration.FromSeconds(f(sinceJ2000.ToSeconds()))
}
