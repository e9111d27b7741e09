package report

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"attendance-bot/model"
	"attendance-bot/utils"

	"github.com/bwmarrin/discordgo"
)

const (
	acceptedReaction = "✅"
	rejectedReaction = "❌"

	fetchPageSize = 100
)

// Platform is the slice of the chat platform the pipeline consumes. The
// discordgo session satisfies it; tests substitute fakes.
type Platform interface {
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	MessageReactionAdd(channelID, messageID, emojiID string, options ...discordgo.RequestOption) error
	GuildMembers(guildID string, after string, limit int, options ...discordgo.RequestOption) ([]*discordgo.Member, error)
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Pipeline runs one attendance report: fetch the message window, aggregate
// claims, classify the roster, render. Now is overridable for tests.
type Pipeline struct {
	Platform Platform
	Now      func() time.Time
}

func NewPipeline(platform Platform) *Pipeline {
	return &Pipeline{
		Platform: platform,
		Now:      time.Now,
	}
}

// Generate scans channelID for claims over the trailing periodHours window
// and returns the rendered report. Reaction failures are logged and ignored;
// fetch and roster failures abort the run.
func (p *Pipeline) Generate(guildID, channelID string, periodHours float64, policy model.PolicyConfig) (string, error) {
	cutoff := p.Now().UTC().Add(-time.Duration(periodHours * float64(time.Hour)))

	messages, err := p.fetchMessagesAfter(channelID, cutoff)
	if err != nil {
		return "", fmt.Errorf("error fetching messages from channel %s: %w", channelID, err)
	}

	totals, outcomes := Aggregate(messages)
	p.acknowledge(channelID, outcomes)

	roster, err := p.Roster(guildID)
	if err != nil {
		return "", fmt.Errorf("error fetching guild members: %w", err)
	}

	return Classify(totals, roster, policy, periodHours).Render(), nil
}

// Publish sends the report text to the destination channel, splitting it if
// it exceeds the platform message limit.
func (p *Pipeline) Publish(channelID, text string) error {
	for _, chunk := range utils.SplitMessage(text) {
		if _, err := p.Platform.ChannelMessageSend(channelID, chunk); err != nil {
			return fmt.Errorf("error publishing report to channel %s: %w", channelID, err)
		}
	}
	return nil
}

// ResolveChannel returns the destination channel, or nil when it no longer
// exists.
func (p *Pipeline) ResolveChannel(channelID string) *discordgo.Channel {
	if channelID == "" {
		return nil
	}
	channel, err := p.Platform.Channel(channelID)
	if err != nil {
		return nil
	}
	return channel
}

// fetchMessagesAfter pages through channel history and returns every message
// strictly newer than the cutoff.
func (p *Pipeline) fetchMessagesAfter(channelID string, cutoff time.Time) ([]*discordgo.Message, error) {
	var window []*discordgo.Message
	afterID := TimeToSnowflake(cutoff)
	for {
		page, err := p.Platform.ChannelMessages(channelID, fetchPageSize, "", afterID, "")
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}
		// The after-cursor page arrives newest first; keep the cursor on the
		// newest message and keep only messages inside the window.
		afterID = page[0].ID
		for _, msg := range page {
			if msg.Timestamp.After(cutoff) {
				window = append(window, msg)
			}
		}
		if len(page) < fetchPageSize {
			break
		}
	}
	return window, nil
}

// Roster pages through the full member list of a guild.
func (p *Pipeline) Roster(guildID string) ([]*discordgo.Member, error) {
	var roster []*discordgo.Member
	after := ""
	for {
		page, err := p.Platform.GuildMembers(guildID, after, 1000)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}
		roster = append(roster, page...)
		after = page[len(page)-1].User.ID
		if len(page) < 1000 {
			break
		}
	}
	return roster, nil
}

// acknowledge reacts to each scanned message with the outcome marker.
// Best effort: a failed reaction never aborts the run.
func (p *Pipeline) acknowledge(channelID string, outcomes []Outcome) {
	for _, outcome := range outcomes {
		emoji := rejectedReaction
		if outcome.Accepted {
			emoji = acceptedReaction
		}
		if err := p.Platform.MessageReactionAdd(channelID, outcome.Message.ID, emoji); err != nil {
			log.Printf("Failed to add %s reaction to message %s: %v", emoji, outcome.Message.ID, err)
		}
	}
}

// TimeToSnowflake converts a time to the Discord snowflake that marks it,
// for use as a history cursor.
func TimeToSnowflake(t time.Time) string {
	const discordEpochMs = 1420070400000
	ms := t.UnixMilli() - discordEpochMs
	if ms < 0 {
		ms = 0
	}
	return strconv.FormatInt(ms<<22, 10)
}
