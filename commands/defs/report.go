package defs

import "github.com/bwmarrin/discordgo"

var CheckReports = &discordgo.ApplicationCommand{
	Name:        "check-reports",
	Description: "Scan a channel for work reports and post the attendance summary",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Channel whose messages are scanned for reports",
			Required:    true,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionNumber,
			Name:        "period",
			Description: "Window in hours (defaults to the configured period)",
			Required:    false,
		},
	},
}

var EnableAutoReport = &discordgo.ApplicationCommand{
	Name:        "enable-auto-report",
	Description: "Publish the attendance report to a channel on the configured period",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Channel to scan and publish reports in",
			Required:    true,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionNumber,
			Name:        "period",
			Description: "Override the report period in hours",
			Required:    false,
		},
	},
}

var DisableAutoReport = &discordgo.ApplicationCommand{
	Name:        "disable-auto-report",
	Description: "Stop publishing automatic attendance reports",
}

var SetRequiredWorkTime = &discordgo.ApplicationCommand{
	Name:        "set-required-work-time",
	Description: "Set the required work time threshold",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionNumber,
			Name:        "hours",
			Description: "Required hours per reporting period",
			Required:    true,
		},
	},
}

var SetReportPeriod = &discordgo.ApplicationCommand{
	Name:        "set-report-period",
	Description: "Set the reporting window and auto-report interval",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionNumber,
			Name:        "hours",
			Description: "Period in hours",
			Required:    true,
		},
	},
}
