package report

import "github.com/bwmarrin/discordgo"

// Outcome records whether a scanned message carried a parseable claim. It
// only drives the acknowledgement reaction; nothing downstream reads it.
type Outcome struct {
	Message  *discordgo.Message
	Accepted bool
}

// Aggregate folds a message window into per-author worked minutes. Multiple
// claims from one author are additive. The fold is pure: re-running it over
// the same window yields the same totals, and per-author totals do not depend
// on message order.
func Aggregate(messages []*discordgo.Message) (map[string]float64, []Outcome) {
	totals := make(map[string]float64)
	outcomes := make([]Outcome, 0, len(messages))
	for _, msg := range messages {
		hours, ok := ExtractHours(msg.Content)
		if ok {
			totals[msg.Author.ID] += hours * 60
		}
		outcomes = append(outcomes, Outcome{Message: msg, Accepted: ok})
	}
	return totals, outcomes
}
