package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"attendance-bot/utils"
)

func (b *Bot) Run() {
	err := b.Session.Open()
	if err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}

	log.Println("Registering commands...")
	if b.cfg.GuildID != "" {
		b.RefreshCommands(b.cfg.GuildID)
	} else {
		guilds, err := b.Session.UserGuilds(100, "", "", false)
		if err != nil {
			log.Printf("Could not fetch guilds: %v", err)
		}
		for _, guild := range guilds {
			b.RefreshCommands(guild.ID)
		}
	}

	// Resume auto-reporting if it was enabled when the process last exited.
	if b.Store.Policy().AutoReportEnabled {
		log.Println("Auto-report was enabled, resuming the report loop.")
		b.Scheduler.Start()
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	utils.LogInfo(b.Session, b.cfg.LogChannelID, "System", "Startup", "Bot has started successfully.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}
