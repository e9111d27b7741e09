package database

import (
	"encoding/json"
	"fmt"
	"sync"

	"attendance-bot/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// configRow is one key of the policy record in its stored form.
type configRow struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

// Store persists the attendance policy record in a sqlite key/value table.
// Loading merges stored keys over the defaults and writes any missing keys
// back, so after Open the table always contains every recognized key. Rows
// with keys this version does not recognize are left untouched.
type Store struct {
	db *sqlx.DB

	mu     sync.RWMutex
	policy model.PolicyConfig
}

const createPolicyTableSQL = `CREATE TABLE IF NOT EXISTS policy_config (
	"key" TEXT NOT NULL PRIMARY KEY,
	"value" TEXT NOT NULL
);`

// Open opens (creating if needed) the policy database at the given path and
// loads the current record. Open never fails on missing or partial content,
// only on I/O or schema errors.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening policy database %s: %w", path, err)
	}
	if _, err := db.Exec(createPolicyTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating policy table: %w", err)
	}

	s := &Store{db: db}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Policy returns a snapshot copy of the current record.
func (s *Store) Policy() model.PolicyConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy.Clone()
}

// Update applies mutate to a copy of the record and persists the whole record
// synchronously. On a persistence failure the in-memory record is left
// unchanged and the error is returned to the caller.
func (s *Store) Update(mutate func(*model.PolicyConfig)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.policy.Clone()
	mutate(&next)
	if err := s.save(next); err != nil {
		return err
	}
	s.policy = next
	return nil
}

func (s *Store) load() error {
	var rows []configRow
	if err := s.db.Select(&rows, `SELECT key, value FROM policy_config`); err != nil {
		return fmt.Errorf("error reading policy record: %w", err)
	}

	stored := make(map[string]json.RawMessage, len(rows))
	for _, row := range rows {
		stored[row.Key] = json.RawMessage(row.Value)
	}

	policy := model.DefaultPolicyConfig()
	for key, target := range policyFields(&policy) {
		raw, ok := stored[key]
		if !ok {
			continue
		}
		// Unparseable stored values fall back to the default for that key.
		_ = json.Unmarshal(raw, target)
	}
	s.policy = policy

	// Read-repair: make sure every recognized key exists in the table.
	return s.save(policy)
}

// save upserts every recognized key in a single transaction. Unknown keys in
// the table are preserved for forward compatibility.
func (s *Store) save(policy model.PolicyConfig) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("error starting policy save: %w", err)
	}
	for key, target := range policyFields(&policy) {
		value, err := json.Marshal(target)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error encoding policy key %s: %w", key, err)
		}
		_, err = tx.Exec(
			`INSERT INTO policy_config(key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, string(value),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error writing policy key %s: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing policy save: %w", err)
	}
	return nil
}

// policyFields maps stored key names to the fields of the record.
func policyFields(p *model.PolicyConfig) map[string]interface{} {
	return map[string]interface{}{
		"required_work_time_hours":  &p.RequiredWorkHours,
		"report_check_period_hours": &p.ReportPeriodHours,
		"applicable_roles":          &p.EligibleRoleIDs,
		"auto_report_enabled":       &p.AutoReportEnabled,
		"auto_report_channel":       &p.AutoReportChannel,
		"command_access_users":      &p.AccessUserIDs,
		"command_access_roles":      &p.AccessRoleIDs,
		"whitelist":                 &p.ExemptMemberIDs,
	}
}
