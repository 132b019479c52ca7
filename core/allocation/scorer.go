package allocation

import (
	"strings"
	"time"

	"github.com/gyakuten55/rikuso-demo/core/model"
)

// Class markers looked up in the free-form vehicle type. The fleet data mixes
// romanized and Japanese tonnage labels.
var (
	twoTonMarkers  = []string{"2t", "2トン"}
	fourTonMarkers = []string{"4t", "4トン"}
)

// Score rates how desirable a vehicle is for assignment, clamped to [1,10].
// Base value is 5; low mileage, a fresh inspection and bigger tonnage raise
// it, high mileage and a stale inspection lower it. asOf anchors the
// days-since-inspection arithmetic so results are reproducible for a fixed
// snapshot and date.
func Score(v model.Vehicle, asOf time.Time) int {
	score := 5

	if v.Mileage > 0 && v.Mileage < 50_000 {
		score += 2
	} else if v.Mileage > 100_000 {
		score--
	}

	if !v.LastInspection.IsZero() {
		days := model.DaysBetween(v.LastInspection, asOf)
		if days < 30 {
			score++
		} else if days > 90 {
			score--
		}
	}

	if hasMarker(v.Type, twoTonMarkers) {
		score++
	}
	if hasMarker(v.Type, fourTonMarkers) {
		score += 2
	}

	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}

func hasMarker(vehicleType string, markers []string) bool {
	t := strings.ToLower(vehicleType)
	for _, m := range markers {
		if strings.Contains(t, m) {
			return true
		}
	}
	return false
}
