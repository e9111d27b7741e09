package handlers

import (
	"fmt"
	"log"
	"strings"

	"attendance-bot/bot"
	"attendance-bot/model"
	"attendance-bot/utils"

	"github.com/bwmarrin/discordgo"
)

func HandleApplicableRoles(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i.ApplicationCommandData())
	action := opts["action"].StringValue()

	if action == "list" {
		roles := b.Store.Policy().EligibleRoleIDs
		if len(roles) == 0 {
			utils.SendSimpleResponse(s, i, "The applicable role list is empty; every member counts.")
			return
		}
		utils.SendSimpleResponse(s, i, "Applicable roles: "+joinRoleMentions(roles))
		return
	}

	roleOpt, ok := opts["role"]
	if !ok {
		utils.SendErrorResponse(s, i, "A role is required for this action.")
		return
	}
	roleID := roleOpt.RoleValue(nil, "").ID

	var changed bool
	err := b.Store.Update(func(p *model.PolicyConfig) {
		if action == "add" {
			p.EligibleRoleIDs, changed = appendUnique(p.EligibleRoleIDs, roleID)
		} else {
			p.EligibleRoleIDs, changed = removeItem(p.EligibleRoleIDs, roleID)
		}
	})
	if err != nil {
		log.Printf("applicable-roles %s failed: %v", action, err)
		utils.SendErrorResponse(s, i, fmt.Sprintf("Could not save the policy: %v", err))
		return
	}

	switch {
	case action == "add" && changed:
		utils.SendSimpleResponse(s, i, fmt.Sprintf("Role <@&%s> added to the applicable roles.", roleID))
	case action == "add":
		utils.SendSimpleResponse(s, i, fmt.Sprintf("Role <@&%s> is already applicable.", roleID))
	case changed:
		utils.SendSimpleResponse(s, i, fmt.Sprintf("Role <@&%s> removed from the applicable roles.", roleID))
	default:
		utils.SendSimpleResponse(s, i, fmt.Sprintf("Role <@&%s> was not in the applicable roles.", roleID))
	}
}

func HandleReportAccess(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i.ApplicationCommandData())
	action := opts["action"].StringValue()

	if action == "list" {
		policy := b.Store.Policy()
		var parts []string
		if len(policy.AccessUserIDs) > 0 {
			parts = append(parts, "Users: "+joinUserMentions(policy.AccessUserIDs))
		}
		if len(policy.AccessRoleIDs) > 0 {
			parts = append(parts, "Roles: "+joinRoleMentions(policy.AccessRoleIDs))
		}
		if len(parts) == 0 {
			utils.SendSimpleResponse(s, i, "No extra command access is granted; only administrators may run commands.")
			return
		}
		utils.SendSimpleResponse(s, i, strings.Join(parts, "\n"))
		return
	}

	var id string
	if strings.HasSuffix(action, "_user") {
		userOpt, ok := opts["user"]
		if !ok {
			utils.SendErrorResponse(s, i, "A user is required for this action.")
			return
		}
		id = userOpt.UserValue(nil).ID
	} else {
		roleOpt, ok := opts["role"]
		if !ok {
			utils.SendErrorResponse(s, i, "A role is required for this action.")
			return
		}
		id = roleOpt.RoleValue(nil, "").ID
	}

	var changed bool
	err := b.Store.Update(func(p *model.PolicyConfig) {
		switch action {
		case "add_user":
			p.AccessUserIDs, changed = appendUnique(p.AccessUserIDs, id)
		case "remove_user":
			p.AccessUserIDs, changed = removeItem(p.AccessUserIDs, id)
		case "add_role":
			p.AccessRoleIDs, changed = appendUnique(p.AccessRoleIDs, id)
		case "remove_role":
			p.AccessRoleIDs, changed = removeItem(p.AccessRoleIDs, id)
		}
	})
	if err != nil {
		log.Printf("report-access %s failed: %v", action, err)
		utils.SendErrorResponse(s, i, fmt.Sprintf("Could not save the policy: %v", err))
		return
	}
	if changed {
		utils.SendSimpleResponse(s, i, "Command access updated.")
	} else {
		utils.SendSimpleResponse(s, i, "Command access was already in that state.")
	}
}

func HandleWhitelist(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	opts := optionMap(i.ApplicationCommandData())
	action := opts["action"].StringValue()

	if action == "list" {
		exempt := b.Store.Policy().ExemptMemberIDs
		if len(exempt) == 0 {
			utils.SendSimpleResponse(s, i, "The whitelist is empty.")
			return
		}
		utils.SendSimpleResponse(s, i, "Whitelist: "+joinUserMentions(exempt))
		return
	}

	userOpt, ok := opts["user"]
	if !ok {
		utils.SendErrorResponse(s, i, "A user is required for this action.")
		return
	}
	userID := userOpt.UserValue(nil).ID

	var changed bool
	err := b.Store.Update(func(p *model.PolicyConfig) {
		if action == "add" {
			p.ExemptMemberIDs, changed = appendUnique(p.ExemptMemberIDs, userID)
		} else {
			p.ExemptMemberIDs, changed = removeItem(p.ExemptMemberIDs, userID)
		}
	})
	if err != nil {
		log.Printf("whitelist %s failed: %v", action, err)
		utils.SendErrorResponse(s, i, fmt.Sprintf("Could not save the policy: %v", err))
		return
	}

	switch {
	case action == "add" && changed:
		utils.SendSimpleResponse(s, i, fmt.Sprintf("<@%s> added to the whitelist.", userID))
	case action == "add":
		utils.SendSimpleResponse(s, i, fmt.Sprintf("<@%s> is already on the whitelist.", userID))
	case changed:
		utils.SendSimpleResponse(s, i, fmt.Sprintf("<@%s> removed from the whitelist.", userID))
	default:
		utils.SendSimpleResponse(s, i, fmt.Sprintf("<@%s> was not on the whitelist.", userID))
	}
}

func HandlePolicyInfo(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	policy := b.Store.Policy()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Required work time: %g hours\n", policy.RequiredWorkHours)
	fmt.Fprintf(&sb, "Report period: %g hours\n", policy.ReportPeriodHours)
	fmt.Fprintf(&sb, "Applicable roles: %s\n", orNone(joinRoleMentions(policy.EligibleRoleIDs), "all members"))
	if policy.AutoReportEnabled {
		fmt.Fprintf(&sb, "Auto-report: enabled in <#%s>\n", policy.AutoReportChannel)
	} else {
		sb.WriteString("Auto-report: disabled\n")
	}
	fmt.Fprintf(&sb, "Access users: %s\n", orNone(joinUserMentions(policy.AccessUserIDs), "none"))
	fmt.Fprintf(&sb, "Access roles: %s\n", orNone(joinRoleMentions(policy.AccessRoleIDs), "none"))
	fmt.Fprintf(&sb, "Whitelist: %s", orNone(joinUserMentions(policy.ExemptMemberIDs), "empty"))

	utils.SendSimpleResponse(s, i, sb.String())
}

func joinUserMentions(ids []string) string {
	mentions := make([]string, 0, len(ids))
	for _, id := range ids {
		mentions = append(mentions, "<@"+id+">")
	}
	return strings.Join(mentions, ", ")
}

func joinRoleMentions(ids []string) string {
	mentions := make([]string, 0, len(ids))
	for _, id := range ids {
		mentions = append(mentions, "<@&"+id+">")
	}
	return strings.Join(mentions, ", ")
}

func orNone(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
