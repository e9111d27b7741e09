package utils

import (
	"attendance-bot/model"

	"github.com/bwmarrin/discordgo"
)

// contains checks if a slice of strings contains an element.
func contains(slice []string, item string) bool {
	for _, a := range slice {
		if a == item {
			return true
		}
	}
	return false
}

// IsEligible reports whether a member counts toward attendance reporting.
// An empty eligible-role list means every non-bot member is eligible.
func IsEligible(member *discordgo.Member, policy model.PolicyConfig) bool {
	if len(policy.EligibleRoleIDs) == 0 {
		return true
	}
	for _, roleID := range member.Roles {
		if contains(policy.EligibleRoleIDs, roleID) {
			return true
		}
	}
	return false
}

// HasCommandAccess reports whether the invoking member may run bot commands.
// Guild administrators always pass; otherwise the member must be on the
// access user list or hold an access role.
func HasCommandAccess(member *discordgo.Member, policy model.PolicyConfig) bool {
	if member == nil || member.User == nil {
		return false
	}
	if member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}
	if contains(policy.AccessUserIDs, member.User.ID) {
		return true
	}
	for _, roleID := range member.Roles {
		if contains(policy.AccessRoleIDs, roleID) {
			return true
		}
	}
	return false
}

// IsExempt reports whether a member is excluded from voice presence checks.
// Exemption does not remove a member from attendance reporting.
func IsExempt(userID string, policy model.PolicyConfig) bool {
	return contains(policy.ExemptMemberIDs, userID)
}
