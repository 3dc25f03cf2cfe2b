package gamepad

import "math"

// Zone is the classification of a stick's deflection length.
type Zone int

const (
	ZoneDead Zone = iota
	ZoneTransitional
	ZoneActive
)

func (z Zone) String() string {
	switch z {
	case ZoneDead:
		return "dead"
	case ZoneActive:
		return "active"
	default:
		return "transitional"
	}
}

// StickConfig holds the hysteresis thresholds of one stick.
// Dead must be lower than Active; the engine does not check this.
type StickConfig struct {
	Dead   float64
	Active float64
}

// Classify returns the zone a deflection of the given length falls in.
func (c StickConfig) Classify(length float64) Zone {
	if length >= c.Active {
		return ZoneActive
	}
	if length < c.Dead {
		return ZoneDead
	}
	return ZoneTransitional
}

// Vectorize converts a raw position into its length and its angle in
// degrees, counter-clockwise from +X, in (-180, 180]. The origin has angle 0.
func Vectorize(v Vector) (length, angle float64) {
	length = math.Sqrt(v.X*v.X + v.Y*v.Y)
	if v.X == 0 && v.Y == 0 {
		return length, 0
	}
	rad := math.Atan2(v.Y, v.X)
	// atan2 returns -Pi for (-x, -0); fold it into the range.
	if rad == -math.Pi {
		rad = math.Pi
	}
	return length, rad * 180 / math.Pi
}

// Bucket is one of the eight compass directions a stick can point in.
type Bucket int

const (
	BucketT Bucket = iota
	BucketTR
	BucketR
	BucketBR
	BucketB
	BucketBL
	BucketL
	BucketTL
	BucketCount
)

var bucketNames = [BucketCount]string{
	BucketT:  "T",
	BucketTR: "TR",
	BucketR:  "R",
	BucketBR: "BR",
	BucketB:  "B",
	BucketBL: "BL",
	BucketL:  "L",
	BucketTL: "TL",
}

func (b Bucket) String() string {
	if b < 0 || b >= BucketCount {
		return "?"
	}
	return bucketNames[b]
}

// ParseBucket returns the Bucket whose symbol is s.
func ParseBucket(s string) (Bucket, bool) {
	for b, name := range bucketNames {
		if name == s {
			return Bucket(b), true
		}
	}
	return 0, false
}

type bucketRange struct {
	lo, hi      float64
	hiInclusive bool
	bucket      Bucket
}

// Evaluated in order, first match wins. Angles in (157.5, 180] and
// (-180, -157.5) match nothing and fall through to L.
var bucketTable = []bucketRange{
	{-22.5, 22.5, true, BucketR},
	{-67.5, -22.5, false, BucketBR},
	{-112.5, -67.5, false, BucketB},
	{-157.5, -112.5, false, BucketBL},
	{112.5, 157.5, true, BucketTL},
	{67.5, 112.5, false, BucketT},
	{22.5, 67.5, false, BucketTR},
}

// BucketFor maps an angle in degrees to its direction bucket.
func BucketFor(angle float64) Bucket {
	for _, r := range bucketTable {
		if angle < r.lo {
			continue
		}
		if angle < r.hi || (r.hiInclusive && angle == r.hi) {
			return r.bucket
		}
	}
	return BucketL
}
