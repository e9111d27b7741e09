package handlers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"attendance-bot/bot"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

func HandleSystemInfo(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	cpuCount, _ := cpu.Counts(true)
	cpuPercent, _ := cpu.Percent(0, false)
	vm, _ := mem.VirtualMemory()
	hostInfo, _ := host.Info()

	var dbSizeKB int64
	if info, err := os.Stat(filepath.Join(b.GetConfig().DataDir, "policy.db")); err == nil {
		dbSizeKB = info.Size() / 1024
	}

	cpuUsage := "n/a"
	if len(cpuPercent) > 0 {
		cpuUsage = fmt.Sprintf("%.1f%%", cpuPercent[0])
	}

	embed := &discordgo.MessageEmbed{
		Title: "System Info",
		Color: 0x5865F2, // Discord Blurple
		Fields: []*discordgo.MessageEmbedField{
			{Name: "OS", Value: fmt.Sprintf("%s %s", hostInfo.Platform, hostInfo.PlatformVersion), Inline: true},
			{Name: "Kernel", Value: hostInfo.KernelVersion, Inline: true},
			{Name: "Go version", Value: runtime.Version(), Inline: true},
			{Name: "CPUs", Value: fmt.Sprintf("%d", cpuCount), Inline: true},
			{Name: "CPU usage", Value: cpuUsage, Inline: true},
			{Name: "Memory", Value: fmt.Sprintf("%.1f%% (%d MB / %d MB)", vm.UsedPercent, vm.Used/1024/1024, vm.Total/1024/1024), Inline: true},
			{Name: "Policy DB size", Value: fmt.Sprintf("%d KB", dbSizeKB), Inline: true},
			{Name: "Gateway latency", Value: s.HeartbeatLatency().String(), Inline: true},
			{Name: "Goroutines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error responding to system-info: %v", err)
	}
}
