package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"attendance-bot/bot"
	"attendance-bot/utils"

	"github.com/bwmarrin/discordgo"
)

type voiceMemberInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// HandleVoiceData dumps the occupants of voice and stage channels as JSON,
// filtered by the eligibility policy.
func HandleVoiceData(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i.ApplicationCommandData())

	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("Error deferring voice-data response: %v", err)
		return
	}

	guild, err := s.State.Guild(i.GuildID)
	if err != nil {
		utils.SendFollowUp(s, i.Interaction, fmt.Sprintf("Could not read guild state: %v", err))
		return
	}

	var onlyChannel string
	if opt, ok := opts["channel"]; ok {
		onlyChannel = opt.ChannelValue(nil).ID
	}

	policy := b.Store.Policy()
	membersByID := make(map[string]*discordgo.Member)
	roster, err := b.Pipeline.Roster(i.GuildID)
	if err != nil {
		utils.SendFollowUp(s, i.Interaction, fmt.Sprintf("Could not fetch guild members: %v", err))
		return
	}
	for _, member := range roster {
		membersByID[member.User.ID] = member
	}

	channelNames := make(map[string]string)
	data := make(map[string][]voiceMemberInfo)
	for _, channel := range guild.Channels {
		if channel.Type != discordgo.ChannelTypeGuildVoice && channel.Type != discordgo.ChannelTypeGuildStageVoice {
			continue
		}
		if onlyChannel != "" && channel.ID != onlyChannel {
			continue
		}
		channelNames[channel.ID] = channel.Name
		data[channel.Name] = []voiceMemberInfo{}
	}

	for _, vs := range guild.VoiceStates {
		name, ok := channelNames[vs.ChannelID]
		if !ok {
			continue
		}
		member, ok := membersByID[vs.UserID]
		if !ok || !utils.IsEligible(member, policy) {
			continue
		}
		data[name] = append(data[name], voiceMemberInfo{
			ID:          member.User.ID,
			Name:        member.User.Username,
			DisplayName: memberDisplayName(member),
		})
	}

	encoded, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		utils.SendFollowUp(s, i.Interaction, fmt.Sprintf("Could not encode voice data: %v", err))
		return
	}
	utils.SendFollowUp(s, i.Interaction, "```json\n"+string(encoded)+"\n```")
}

// HandleMentionNotInChannel mentions every eligible, non-exempt member who is
// not in voice (or not in the given channel).
func HandleMentionNotInChannel(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i.ApplicationCommandData())

	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("Error deferring mention-not-in-channel response: %v", err)
		return
	}

	guild, err := s.State.Guild(i.GuildID)
	if err != nil {
		utils.SendFollowUp(s, i.Interaction, fmt.Sprintf("Could not read guild state: %v", err))
		return
	}

	var requiredChannel string
	if opt, ok := opts["channel"]; ok {
		requiredChannel = opt.ChannelValue(nil).ID
	}

	voiceChannelOf := make(map[string]string, len(guild.VoiceStates))
	for _, vs := range guild.VoiceStates {
		voiceChannelOf[vs.UserID] = vs.ChannelID
	}

	policy := b.Store.Policy()
	roster, err := b.Pipeline.Roster(i.GuildID)
	if err != nil {
		utils.SendFollowUp(s, i.Interaction, fmt.Sprintf("Could not fetch guild members: %v", err))
		return
	}

	var mentions []string
	for _, member := range roster {
		if member.User.Bot || utils.IsExempt(member.User.ID, policy) || !utils.IsEligible(member, policy) {
			continue
		}
		channelID, inVoice := voiceChannelOf[member.User.ID]
		absent := !inVoice
		if requiredChannel != "" {
			absent = channelID != requiredChannel
		}
		if absent {
			mentions = append(mentions, "<@"+member.User.ID+">")
		}
	}

	if len(mentions) == 0 {
		utils.SendFollowUp(s, i.Interaction, "All applicable members are in voice channels!")
		return
	}

	chunks := utils.SplitMessage(strings.Join(mentions, " "))
	utils.SendFollowUp(s, i.Interaction, chunks[0])
	for _, chunk := range chunks[1:] {
		if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Content: chunk,
			Flags:   discordgo.MessageFlagsEphemeral,
		}); err != nil {
			log.Printf("Error sending mention follow-up: %v", err)
			return
		}
	}
}

func HandleEcho(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i.ApplicationCommandData())
	channelID := opts["channel"].ChannelValue(nil).ID
	message := opts["message"].StringValue()

	if err := utils.SendLongMessage(s, channelID, message); err != nil {
		log.Printf("echo failed: %v", err)
		utils.SendErrorResponse(s, i, fmt.Sprintf("Could not send the message: %v", err))
		return
	}
	utils.SendSimpleResponse(s, i, "Message sent.")
}

func memberDisplayName(member *discordgo.Member) string {
	if member.Nick != "" {
		return member.Nick
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName
	}
	return member.User.Username
}
