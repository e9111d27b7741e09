package database

import (
	"path/filepath"
	"testing"

	"attendance-bot/model"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenReturnsDefaultsOnEmptyDatabase(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "policy.db"))

	policy := store.Policy()
	want := model.DefaultPolicyConfig()
	if policy.RequiredWorkHours != want.RequiredWorkHours {
		t.Errorf("RequiredWorkHours = %v, want %v", policy.RequiredWorkHours, want.RequiredWorkHours)
	}
	if policy.ReportPeriodHours != want.ReportPeriodHours {
		t.Errorf("ReportPeriodHours = %v, want %v", policy.ReportPeriodHours, want.ReportPeriodHours)
	}
	if policy.AutoReportEnabled {
		t.Errorf("AutoReportEnabled defaults to false")
	}
	if len(policy.EligibleRoleIDs) != 0 {
		t.Errorf("EligibleRoleIDs defaults to empty, got %v", policy.EligibleRoleIDs)
	}
}

func TestUpdatePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.db")

	store := openTestStore(t, path)
	err := store.Update(func(p *model.PolicyConfig) {
		p.RequiredWorkHours = 6.5
		p.AutoReportEnabled = true
		p.AutoReportChannel = "chan-1"
		p.EligibleRoleIDs = append(p.EligibleRoleIDs, "staff")
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	store.Close()

	reopened := openTestStore(t, path)
	policy := reopened.Policy()
	if policy.RequiredWorkHours != 6.5 {
		t.Errorf("RequiredWorkHours = %v, want 6.5", policy.RequiredWorkHours)
	}
	if !policy.AutoReportEnabled || policy.AutoReportChannel != "chan-1" {
		t.Errorf("auto-report state lost: enabled=%v channel=%q", policy.AutoReportEnabled, policy.AutoReportChannel)
	}
	if len(policy.EligibleRoleIDs) != 1 || policy.EligibleRoleIDs[0] != "staff" {
		t.Errorf("EligibleRoleIDs = %v, want [staff]", policy.EligibleRoleIDs)
	}
}

func TestOpenReadRepairsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.db")

	store := openTestStore(t, path)
	var keys []string
	if err := store.db.Select(&keys, `SELECT key FROM policy_config ORDER BY key`); err != nil {
		t.Fatalf("select keys: %v", err)
	}
	if len(keys) != len(policyFields(&model.PolicyConfig{})) {
		t.Errorf("read-repair left %d keys, want %d: %v", len(keys), len(policyFields(&model.PolicyConfig{})), keys)
	}
}

func TestOpenPreservesUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.db")

	store := openTestStore(t, path)
	if _, err := store.db.Exec(`INSERT INTO policy_config(key, value) VALUES ('future_feature_flag', 'true')`); err != nil {
		t.Fatalf("insert unknown key: %v", err)
	}
	if err := store.Update(func(p *model.PolicyConfig) { p.RequiredWorkHours = 4 }); err != nil {
		t.Fatalf("update: %v", err)
	}
	store.Close()

	reopened := openTestStore(t, path)
	var value string
	if err := reopened.db.Get(&value, `SELECT value FROM policy_config WHERE key = 'future_feature_flag'`); err != nil {
		t.Fatalf("unknown key was not preserved: %v", err)
	}
	if value != "true" {
		t.Errorf("unknown key value = %q, want \"true\"", value)
	}
}

func TestOpenIgnoresUnparseableValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.db")

	store := openTestStore(t, path)
	if _, err := store.db.Exec(`UPDATE policy_config SET value = 'not json' WHERE key = 'required_work_time_hours'`); err != nil {
		t.Fatalf("corrupt value: %v", err)
	}
	store.Close()

	reopened := openTestStore(t, path)
	if got := reopened.Policy().RequiredWorkHours; got != model.DefaultPolicyConfig().RequiredWorkHours {
		t.Errorf("corrupted key did not fall back to the default: %v", got)
	}
}

func TestUpdateFailureLeavesMemoryUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.db")
	store := openTestStore(t, path)

	// Closing the database forces the next save to fail.
	store.db.Close()
	err := store.Update(func(p *model.PolicyConfig) { p.RequiredWorkHours = 99 })
	if err == nil {
		t.Fatalf("expected an error from a save on a closed database")
	}
	if got := store.Policy().RequiredWorkHours; got == 99 {
		t.Errorf("failed save must not change the in-memory record")
	}
}
