package geometry

// IsFlanking reports whether attacker and ally flank target: both threaten it
// and the line between their centers passes through the target's footprint.
func IsFlanking(attacker, ally, target *Token) bool {
	if attacker == nil || ally == nil || target == nil || attacker == ally {
		return false
	}
	if attacker.Scene != target.Scene || ally.Scene != target.Scene {
		return false
	}
	if !threatens(attacker, target, nil) || !threatens(ally, target, nil) {
		return false
	}

	x1, y1 := attacker.Bounds.Center()
	x2, y2 := ally.Bounds.Center()
	return target.Bounds.SegmentCrosses(x1, y1, x2, y2)
}

// ThreateningAllies lists tokens friendly to attacker, other than attacker,
// that threaten target.
func ThreateningAllies(attacker, target *Token) []*Token {
	if attacker == nil || target == nil || attacker.Scene == nil {
		return nil
	}
	var out []*Token
	for _, t := range attacker.Scene.Tokens {
		if t == attacker || t == target || t.Disposition != attacker.Disposition {
			continue
		}
		if threatens(t, target, nil) {
			out = append(out, t)
		}
	}
	return out
}
