package model

import "time"

// Config holds the process bootstrap configuration read from the environment.
type Config struct {
	BotToken     string
	AppID        string
	GuildID      string
	LogChannelID string
	DataDir      string
}

// PolicyConfig is the durable attendance policy record. It is persisted as a
// whole: every mutation goes through the store's Update and rewrites the full
// record, there are no per-field transactions.
type PolicyConfig struct {
	RequiredWorkHours float64  `json:"required_work_time_hours"`
	ReportPeriodHours float64  `json:"report_check_period_hours"`
	EligibleRoleIDs   []string `json:"applicable_roles"`
	AutoReportEnabled bool     `json:"auto_report_enabled"`
	AutoReportChannel string   `json:"auto_report_channel"`
	AccessUserIDs     []string `json:"command_access_users"`
	AccessRoleIDs     []string `json:"command_access_roles"`
	ExemptMemberIDs   []string `json:"whitelist"`
}

// DefaultPolicyConfig returns the record used when no stored value exists.
func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		RequiredWorkHours: 8,
		ReportPeriodHours: 24,
		EligibleRoleIDs:   []string{},
		AccessUserIDs:     []string{},
		AccessRoleIDs:     []string{},
		ExemptMemberIDs:   []string{},
	}
}

// RequiredMinutes is the threshold in minutes; the record stores hours.
func (p PolicyConfig) RequiredMinutes() float64 {
	return p.RequiredWorkHours * 60
}

// ReportPeriod converts the configured period to a duration.
func (p PolicyConfig) ReportPeriod() time.Duration {
	return time.Duration(p.ReportPeriodHours * float64(time.Hour))
}

// Clone returns a copy that shares no slices with the receiver.
func (p PolicyConfig) Clone() PolicyConfig {
	out := p
	out.EligibleRoleIDs = append([]string(nil), p.EligibleRoleIDs...)
	out.AccessUserIDs = append([]string(nil), p.AccessUserIDs...)
	out.AccessRoleIDs = append([]string(nil), p.AccessRoleIDs...)
	out.ExemptMemberIDs = append([]string(nil), p.ExemptMemberIDs...)
	return out
}
