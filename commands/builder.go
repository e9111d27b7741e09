package commands

import (
	"attendance-bot/commands/defs"

	"github.com/bwmarrin/discordgo"
)

// GenerateCommands returns every slash command the bot registers.
func GenerateCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		defs.CheckReports,
		defs.EnableAutoReport,
		defs.DisableAutoReport,
		defs.SetRequiredWorkTime,
		defs.SetReportPeriod,
		defs.ApplicableRoles,
		defs.ReportAccess,
		defs.Whitelist,
		defs.PolicyInfo,
		defs.VoiceData,
		defs.MentionNotInChannel,
		defs.Echo,
		defs.SystemInfo,
	}
}
