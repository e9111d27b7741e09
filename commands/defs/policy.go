package defs

import "github.com/bwmarrin/discordgo"

var ApplicableRoles = &discordgo.ApplicationCommand{
	Name:        "applicable-roles",
	Description: "Manage the roles counted in attendance reporting",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "action",
			Description: "Action to perform",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "add", Value: "add"},
				{Name: "remove", Value: "remove"},
				{Name: "list", Value: "list"},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "Role to add or remove",
			Required:    false,
		},
	},
}

var ReportAccess = &discordgo.ApplicationCommand{
	Name:        "report-access",
	Description: "Manage who may run bot commands besides administrators",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "action",
			Description: "Action to perform",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "add user", Value: "add_user"},
				{Name: "remove user", Value: "remove_user"},
				{Name: "add role", Value: "add_role"},
				{Name: "remove role", Value: "remove_role"},
				{Name: "list", Value: "list"},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to add or remove",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "Role to add or remove",
			Required:    false,
		},
	},
}

var Whitelist = &discordgo.ApplicationCommand{
	Name:        "whitelist",
	Description: "Manage members exempt from voice presence checks",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "action",
			Description: "Action to perform",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "add", Value: "add"},
				{Name: "remove", Value: "remove"},
				{Name: "list", Value: "list"},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to add or remove",
			Required:    false,
		},
	},
}

var PolicyInfo = &discordgo.ApplicationCommand{
	Name:        "policy-info",
	Description: "Show the current attendance policy",
}
