package utils

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// Discord caps message content at 2000 characters; stay under it when
// splitting long report bodies and mention lists.
const maxMessageLen = 1900

// SendErrorResponse sends an ephemeral error message.
func SendErrorResponse(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error sending error response: %v", err)
	}
}

func SendPublicResponse(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
		},
	})
	if err != nil {
		log.Printf("Error sending public response: %v", err)
	}
}

// SendSimpleResponse sends a simple ephemeral message.
func SendSimpleResponse(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error sending simple response: %v", err)
	}
}

// SendFollowUp edits the deferred interaction response with a message.
func SendFollowUp(s *discordgo.Session, i *discordgo.Interaction, message string) {
	_, err := s.InteractionResponseEdit(i, &discordgo.WebhookEdit{
		Content: &message,
	})
	if err != nil {
		log.Printf("Error sending follow-up message: %v", err)
	}
}

// DeferResponse defers an interaction response, optionally making it ephemeral.
func DeferResponse(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) error {
	response := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}
	if ephemeral {
		response.Data = &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		}
	}
	return s.InteractionRespond(i.Interaction, response)
}

// SendLongMessage splits content on line boundaries and sends it as as many
// channel messages as needed.
func SendLongMessage(s *discordgo.Session, channelID, content string) error {
	for _, chunk := range SplitMessage(content) {
		if _, err := s.ChannelMessageSend(channelID, chunk); err != nil {
			return err
		}
	}
	return nil
}

// SplitMessage breaks content into chunks that fit in a single Discord
// message, preferring line boundaries.
func SplitMessage(content string) []string {
	if len(content) <= maxMessageLen {
		return []string{content}
	}
	var chunks []string
	var current string
	start := 0
	for idx := 0; idx <= len(content); idx++ {
		if idx == len(content) || content[idx] == '\n' {
			line := content[start:idx]
			start = idx + 1
			if len(current)+len(line)+1 > maxMessageLen && current != "" {
				chunks = append(chunks, current)
				current = ""
			}
			for len(line) > maxMessageLen {
				chunks = append(chunks, line[:maxMessageLen])
				line = line[maxMessageLen:]
			}
			if current == "" {
				current = line
			} else {
				current += "\n" + line
			}
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}
