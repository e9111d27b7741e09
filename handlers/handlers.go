package handlers

import (
	"log"

	"attendance-bot/bot"
	"attendance-bot/utils"

	"github.com/bwmarrin/discordgo"
)

const accessDeniedMessage = "You do not have permission to use this command."

func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

// requireAccess wraps a command handler with the uniform privilege gate.
// Every command goes through it; denial is the same ephemeral message with no
// state change regardless of the command.
func requireAccess(b *bot.Bot, h func(s *discordgo.Session, i *discordgo.InteractionCreate)) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !utils.HasCommandAccess(i.Member, b.Store.Policy()) {
			utils.SendErrorResponse(s, i, accessDeniedMessage)
			return
		}
		h(s, i)
	}
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	wrap := func(h func(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot)) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		return requireAccess(b, func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			h(s, i, b)
		})
	}
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"check-reports":          wrap(HandleCheckReports),
		"enable-auto-report":     wrap(HandleEnableAutoReport),
		"disable-auto-report":    wrap(HandleDisableAutoReport),
		"set-required-work-time": wrap(HandleSetRequiredWorkTime),
		"set-report-period":      wrap(HandleSetReportPeriod),
		"applicable-roles":       wrap(HandleApplicableRoles),
		"report-access":          wrap(HandleReportAccess),
		"whitelist":              wrap(HandleWhitelist),
		"policy-info":            wrap(HandlePolicyInfo),
		"voice-data":             wrap(HandleVoiceData),
		"mention-not-in-channel": wrap(HandleMentionNotInChannel),
		"echo":                   wrap(HandleEcho),
		"system-info":            wrap(HandleSystemInfo),
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
			h(s, i)
		}
	})
}

// optionMap indexes interaction options by name.
func optionMap(data discordgo.ApplicationCommandInteractionData) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	out := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(data.Options))
	for _, opt := range data.Options {
		out[opt.Name] = opt
	}
	return out
}

// appendUnique adds item unless present; the second result reports whether
// the list changed.
func appendUnique(list []string, item string) ([]string, bool) {
	for _, existing := range list {
		if existing == item {
			return list, false
		}
	}
	return append(list, item), true
}

// removeItem deletes item if present; the second result reports whether the
// list changed.
func removeItem(list []string, item string) ([]string, bool) {
	for idx, existing := range list {
		if existing == item {
			return append(list[:idx], list[idx+1:]...), true
		}
	}
	return list, false
}
