package bot

import (
	"attendance-bot/commands"
	"attendance-bot/model"
	"attendance-bot/report"
	"attendance-bot/utils/database"
	"log"

	"github.com/bwmarrin/discordgo"
)

type Bot struct {
	Session            *discordgo.Session
	RegisteredCommands []*discordgo.ApplicationCommand
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
	Store              *database.Store
	Pipeline           *report.Pipeline
	Scheduler          *ReportScheduler
	cfg                *model.Config
}

func (b *Bot) GetConfig() *model.Config {
	return b.cfg
}

func (b *Bot) GetStore() model.PolicyStore {
	return b.Store
}

func (b *Bot) GetSession() *discordgo.Session {
	return b.Session
}

func (b *Bot) GetPipeline() *report.Pipeline {
	return b.Pipeline
}

func New(cfg *model.Config, store *database.Store) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent | discordgo.IntentsGuildMembers | discordgo.IntentsGuildVoiceStates
	dg.StateEnabled = true

	b := &Bot{
		Session:  dg,
		Store:    store,
		Pipeline: report.NewPipeline(dg),
		cfg:      cfg,
	}
	b.Scheduler = NewReportScheduler(b)
	return b, nil
}

func (b *Bot) Close() {
	log.Println("Gracefully shutting down.")
	b.Scheduler.Shutdown()
	b.Session.Close()
}

func (b *Bot) RefreshCommands(guildID string) {
	cmds := commands.GenerateCommands()
	log.Printf("Registering %d commands for guild %s...", len(cmds), guildID)
	registeredCmds, err := b.Session.ApplicationCommandBulkOverwrite(b.cfg.AppID, guildID, cmds)
	if err != nil {
		log.Printf("cannot update commands for guild '%s': %v", guildID, err)
		return
	}
	b.RegisteredCommands = append(b.RegisteredCommands, registeredCmds...)
}
