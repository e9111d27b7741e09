package defs

import "github.com/bwmarrin/discordgo"

var voiceChannelTypes = []discordgo.ChannelType{
	discordgo.ChannelTypeGuildVoice,
	discordgo.ChannelTypeGuildStageVoice,
}

var VoiceData = &discordgo.ApplicationCommand{
	Name:        "voice-data",
	Description: "Dump voice and stage channel occupants as JSON",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "channel",
			Description:  "Limit the dump to one channel",
			Required:     false,
			ChannelTypes: voiceChannelTypes,
		},
	},
}

var MentionNotInChannel = &discordgo.ApplicationCommand{
	Name:        "mention-not-in-channel",
	Description: "Mention eligible members who are not in a voice channel",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "channel",
			Description:  "Require presence in this specific channel",
			Required:     false,
			ChannelTypes: voiceChannelTypes,
		},
	},
}

var Echo = &discordgo.ApplicationCommand{
	Name:        "echo",
	Description: "Send a message as the bot to a text channel",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Destination channel",
			Required:    true,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "message",
			Description: "Message text",
			Required:    true,
		},
	},
}

var SystemInfo = &discordgo.ApplicationCommand{
	Name:        "system-info",
	Description: "Display bot and system status information",
}
