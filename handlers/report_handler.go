package handlers

import (
	"fmt"
	"log"

	"attendance-bot/bot"
	"attendance-bot/model"
	"attendance-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleCheckReports runs the report pipeline on demand and posts the result
// publicly in the invoking channel.
func HandleCheckReports(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i.ApplicationCommandData())
	channelID := opts["channel"].ChannelValue(nil).ID

	policy := b.Store.Policy()
	period := policy.ReportPeriodHours
	if opt, ok := opts["period"]; ok {
		period = opt.FloatValue()
	}
	if period <= 0 {
		utils.SendErrorResponse(s, i, "The period must be a positive number of hours.")
		return
	}

	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Error deferring check-reports response: %v", err)
		return
	}

	text, err := b.Pipeline.Generate(i.GuildID, channelID, period, policy)
	if err != nil {
		log.Printf("check-reports failed: %v", err)
		utils.SendFollowUp(s, i.Interaction, fmt.Sprintf("Report generation failed: %v", err))
		return
	}

	chunks := utils.SplitMessage(text)
	utils.SendFollowUp(s, i.Interaction, chunks[0])
	for _, chunk := range chunks[1:] {
		if _, err := s.ChannelMessageSend(i.ChannelID, chunk); err != nil {
			log.Printf("Error sending report continuation: %v", err)
			return
		}
	}
}

func HandleEnableAutoReport(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i.ApplicationCommandData())
	channelID := opts["channel"].ChannelValue(nil).ID
	var override float64
	if opt, ok := opts["period"]; ok {
		override = opt.FloatValue()
		if override <= 0 {
			utils.SendErrorResponse(s, i, "The period must be a positive number of hours.")
			return
		}
	}

	if err := b.Scheduler.Enable(channelID, override); err != nil {
		log.Printf("enable-auto-report failed: %v", err)
		utils.SendErrorResponse(s, i, fmt.Sprintf("Could not save the auto-report settings: %v", err))
		return
	}
	period := b.Store.Policy().ReportPeriodHours
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Auto-report enabled. Reports will be published in <#%s> every %g hours.", channelID, period))
}

func HandleDisableAutoReport(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := b.Scheduler.Disable(); err != nil {
		log.Printf("disable-auto-report failed: %v", err)
		utils.SendErrorResponse(s, i, fmt.Sprintf("Could not save the auto-report settings: %v", err))
		return
	}
	utils.SendSimpleResponse(s, i, "Auto-report disabled.")
}

func HandleSetRequiredWorkTime(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	hours := optionMap(i.ApplicationCommandData())["hours"].FloatValue()
	if hours <= 0 {
		utils.SendErrorResponse(s, i, "The required work time must be a positive number of hours.")
		return
	}
	err := b.Store.Update(func(p *model.PolicyConfig) {
		p.RequiredWorkHours = hours
	})
	if err != nil {
		log.Printf("set-required-work-time failed: %v", err)
		utils.SendErrorResponse(s, i, fmt.Sprintf("Could not save the policy: %v", err))
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Required work time set to %g hours.", hours))
}

func HandleSetReportPeriod(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	hours := optionMap(i.ApplicationCommandData())["hours"].FloatValue()
	if hours <= 0 {
		utils.SendErrorResponse(s, i, "The report period must be a positive number of hours.")
		return
	}
	err := b.Store.Update(func(p *model.PolicyConfig) {
		p.ReportPeriodHours = hours
	})
	if err != nil {
		log.Printf("set-report-period failed: %v", err)
		utils.SendErrorResponse(s, i, fmt.Sprintf("Could not save the policy: %v", err))
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Report period set to %g hours.", hours))
}
