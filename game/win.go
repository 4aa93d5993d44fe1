package game

// ShouldGameEnd reports whether any net worth has reached the win target.
func ShouldGameEnd(netWorths []int64, winTarget int64) bool {
	if winTarget <= 0 {
		winTarget = DefaultWinTarget
	}
	for _, v := range netWorths {
		if v >= winTarget {
			return true
		}
	}
	return false
}

// Winners returns the indexes of the players with the highest net worth.
// Ties produce multiple winners.
func Winners(netWorths []int64) []int {
	if len(netWorths) == 0 {
		return nil
	}
	max := netWorths[0]
	for _, v := range netWorths[1:] {
		if v > max {
			max = v
		}
	}
	var idx []int
	for i, v := range netWorths {
		if v == max {
			idx = append(idx, i)
		}
	}
	return idx
}
