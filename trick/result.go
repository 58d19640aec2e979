package trick

import (
	"fmt"
	"strings"
)

// Result is the score snapshot taken at catch time
// Counts are signed: sign is the rotation direction, magnitude the count
type Result struct {
	ShuvitCount   int     `json:"shuvit_count"`   // half turns about the board up axis
	KickflipCount int     `json:"kickflip_count"` // full turns about the board right axis
	Yaw           float64 `json:"yaw"`            // accumulated degrees
	Flip          float64 `json:"flip"`           // accumulated degrees
	Nollie        bool    `json:"nollie"`
	Landed        bool    `json:"landed"` // passed the catch skill check
}

// Name returns the conventional trick name, e.g. "nollie varial kickflip"
func (r Result) Name() string {
	var parts []string
	if r.Nollie {
		parts = append(parts, "nollie")
	}

	shuv := abs(r.ShuvitCount)
	flip := abs(r.KickflipCount)

	switch {
	case shuv == 0 && flip == 0:
		if r.Nollie {
			return "nollie"
		}
		return "ollie"

	case shuv == 1 && flip == 1:
		parts = append(parts, "varial", flipName(r.KickflipCount))

	case shuv == 2 && flip == 1:
		if r.KickflipCount > 0 {
			parts = append(parts, "360 flip")
		} else {
			parts = append(parts, "laser flip")
		}

	default:
		if shuv > 0 {
			parts = append(parts, shuvitName(r.ShuvitCount))
		}
		if flip > 0 {
			parts = append(parts, flipMultiplier(flip)+flipName(r.KickflipCount))
		}
	}

	return strings.Join(parts, " ")
}

func shuvitName(n int) string {
	prefix := ""
	if n < 0 {
		prefix = "frontside "
	}
	if abs(n) == 1 {
		return prefix + "shove-it"
	}
	return fmt.Sprintf("%s%d shove-it", prefix, abs(n)*180)
}

func flipName(n int) string {
	if n < 0 {
		return "heelflip"
	}
	return "kickflip"
}

func flipMultiplier(n int) string {
	switch n {
	case 1:
		return ""
	case 2:
		return "double "
	case 3:
		return "triple "
	}
	return fmt.Sprintf("%dx ", n)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
