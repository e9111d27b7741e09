package report

import (
	"fmt"
	"math"
	"strings"

	"attendance-bot/model"
	"attendance-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// Entry is one member line of a report bucket.
type Entry struct {
	UserID  string
	Minutes float64
}

// Report partitions the eligible, non-bot roster by worked time over one
// reporting period. The three buckets are disjoint and together cover every
// eligible member; ordering follows the roster traversal.
type Report struct {
	PeriodHours   float64
	RequiredHours float64
	Met           []Entry
	Below         []Entry
	None          []Entry
}

// Classify buckets each roster member against the required-minutes threshold.
// Bots and ineligible members are skipped entirely. The threshold is
// inclusive: a total exactly equal to the requirement counts as met.
func Classify(totals map[string]float64, roster []*discordgo.Member, policy model.PolicyConfig, periodHours float64) *Report {
	r := &Report{
		PeriodHours:   periodHours,
		RequiredHours: policy.RequiredWorkHours,
	}
	required := policy.RequiredMinutes()
	for _, member := range roster {
		if member.User == nil || member.User.Bot {
			continue
		}
		if !utils.IsEligible(member, policy) {
			continue
		}
		total := totals[member.User.ID]
		entry := Entry{UserID: member.User.ID, Minutes: total}
		switch {
		case total >= required:
			r.Met = append(r.Met, entry)
		case total > 0:
			r.Below = append(r.Below, entry)
		default:
			r.None = append(r.None, entry)
		}
	}
	return r
}

// Render produces the report text. It is deterministic: identical reports
// render to identical bytes.
func (r *Report) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Attendance for the last %s hours\n\n", formatHours(r.PeriodHours))
	fmt.Fprintf(&b, "1. Worked enough (>= %s h):\n%s\n\n", formatHours(r.RequiredHours), renderBucket(r.Met, true))
	fmt.Fprintf(&b, "2. Worked, but not enough (< %s h):\n%s\n\n", formatHours(r.RequiredHours), renderBucket(r.Below, true))
	fmt.Fprintf(&b, "3. Did not work:\n%s", renderBucket(r.None, false))
	return b.String()
}

func renderBucket(entries []Entry, withMinutes bool) string {
	if len(entries) == 0 {
		return "No data"
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if withMinutes {
			lines = append(lines, fmt.Sprintf("<@%s> (%.0f min)", e.UserID, e.Minutes))
		} else {
			lines = append(lines, fmt.Sprintf("<@%s>", e.UserID))
		}
	}
	return strings.Join(lines, "\n")
}

// formatHours prints whole-hour values without a trailing ".0".
func formatHours(h float64) string {
	if h == math.Trunc(h) {
		return fmt.Sprintf("%.0f", h)
	}
	return strings.TrimRight(fmt.Sprintf("%.2f", h), "0")
}
