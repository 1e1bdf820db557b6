package dailysong

import (
	"sort"
	"time"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

// StreakFromHistory counts consecutive calendar days, ending at the most
// recent submission date and walking backward until the first gap.
//
// The input may arrive in any order. Duplicate dates should not exist (one
// pick per user per day) but are tolerated without double-counting. The
// result does not depend on today's date: an unplayed today does not zero
// out whatever streak the history supports.
func StreakFromHistory(history []domain.Submission) int {
	dates := make([]time.Time, 0, len(history))
	for _, s := range history {
		d, err := time.Parse(domain.DateFormat, s.Date)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return 0
	}

	sort.Slice(dates, func(i, j int) bool { return dates[j].Before(dates[i]) })

	streak := 1
	anchor := dates[0]
	for _, d := range dates[1:] {
		// Parsed dates are all UTC midnights, so this division is exact
		gap := int(anchor.Sub(d).Hours() / 24)
		switch {
		case gap == 0:
			// duplicate date: a tie, not another day
		case gap == 1:
			streak++
			anchor = d
		default:
			return streak
		}
	}
	return streak
}
