package layout

import (
	"hash/fnv"
	"math"
)

// hashUnit maps a key to a stable value in [0, 1)
func hashUnit(key string) float64 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return float64(h.Sum32()) / float64(math.MaxUint32+1)
}

// hashAngle maps a key to a stable angle in [0, 2π)
func hashAngle(key string) float64 {
	return hashUnit(key) * 2 * math.Pi
}
