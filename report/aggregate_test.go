package report

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func makeMessage(id, authorID, content string) *discordgo.Message {
	return &discordgo.Message{
		ID:      id,
		Content: content,
		Author:  &discordgo.User{ID: authorID},
	}
}

func TestAggregateSumsClaimsPerAuthor(t *testing.T) {
	messages := []*discordgo.Message{
		makeMessage("1", "alice", "worked 2 hours"),
		makeMessage("2", "bob", "worked 1.5 hours"),
		makeMessage("3", "alice", "worked 3 hours"),
		makeMessage("4", "bob", "lunch break"),
	}

	totals, outcomes := Aggregate(messages)

	if got := totals["alice"]; got != 300 {
		t.Errorf("alice total = %v min, want 300", got)
	}
	if got := totals["bob"]; got != 90 {
		t.Errorf("bob total = %v min, want 90", got)
	}
	wantAccepted := []bool{true, true, true, false}
	if len(outcomes) != len(messages) {
		t.Fatalf("got %d outcomes, want %d", len(outcomes), len(messages))
	}
	for idx, outcome := range outcomes {
		if outcome.Accepted != wantAccepted[idx] {
			t.Errorf("outcome[%d].Accepted = %v, want %v", idx, outcome.Accepted, wantAccepted[idx])
		}
		if outcome.Message != messages[idx] {
			t.Errorf("outcome[%d] does not reference input message %s", idx, messages[idx].ID)
		}
	}
}

func TestAggregateOrderIndependence(t *testing.T) {
	forward := []*discordgo.Message{
		makeMessage("1", "alice", "worked 1 hour"),
		makeMessage("2", "alice", "worked 2.5 hours"),
		makeMessage("3", "alice", "worked 4 hours"),
	}
	reversed := []*discordgo.Message{forward[2], forward[0], forward[1]}

	totalsA, _ := Aggregate(forward)
	totalsB, _ := Aggregate(reversed)

	if totalsA["alice"] != totalsB["alice"] {
		t.Errorf("order changed the total: %v vs %v", totalsA["alice"], totalsB["alice"])
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	messages := []*discordgo.Message{
		makeMessage("1", "alice", "worked 2 hours"),
		makeMessage("2", "bob", "worked 7,5"),
	}

	first, _ := Aggregate(messages)
	second, _ := Aggregate(messages)

	if len(first) != len(second) {
		t.Fatalf("re-run changed the author count: %d vs %d", len(first), len(second))
	}
	for author, total := range first {
		if second[author] != total {
			t.Errorf("re-run changed %s total: %v vs %v", author, total, second[author])
		}
	}
}

func TestAggregateEmptyWindow(t *testing.T) {
	totals, outcomes := Aggregate(nil)
	if len(totals) != 0 || len(outcomes) != 0 {
		t.Errorf("empty window produced totals=%v outcomes=%v", totals, outcomes)
	}
}
