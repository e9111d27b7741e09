package bot

import (
	"errors"
	"sync"
	"testing"
	"time"

	"attendance-bot/model"
)

// fakeStore is an in-memory model.PolicyStore.
type fakeStore struct {
	mu      sync.Mutex
	policy  model.PolicyConfig
	saveErr error
}

func newFakeStore(periodHours float64) *fakeStore {
	p := model.DefaultPolicyConfig()
	p.ReportPeriodHours = periodHours
	return &fakeStore{policy: p}
}

func (f *fakeStore) Policy() model.PolicyConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.policy.Clone()
}

func (f *fakeStore) Update(mutate func(*model.PolicyConfig)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	next := f.policy.Clone()
	mutate(&next)
	if f.saveErr != nil {
		return f.saveErr
	}
	f.policy = next
	return nil
}

// testScheduler wires a scheduler whose cycles block until released, so the
// test controls exactly how many wakes run.
func testScheduler(store *fakeStore) (*ReportScheduler, chan string, chan struct{}) {
	woke := make(chan string, 100)
	release := make(chan struct{})
	s := &ReportScheduler{
		store: store,
		runCycle: func(channelID string, periodHours float64, policy model.PolicyConfig) error {
			woke <- channelID
			<-release
			return nil
		},
		logErr: func(string, error) {},
	}
	return s, woke, release
}

const testPeriodHours = float64(5*time.Millisecond) / float64(time.Hour)

func TestEnableTwiceKeepsOneLoop(t *testing.T) {
	store := newFakeStore(testPeriodHours)
	s, woke, release := testScheduler(store)
	defer s.Shutdown()
	defer close(release)

	if err := s.Enable("chan-1", 0); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if err := s.Enable("chan-2", 0); err != nil {
		t.Fatalf("re-enable: %v", err)
	}

	for cycle := 0; cycle < 2; cycle++ {
		select {
		case <-woke:
		case <-time.After(time.Second):
			t.Fatalf("cycle %d never woke", cycle)
		}
		// A second loop would wake within its own period and publish while
		// the first cycle is still held; give it ample time to show up.
		select {
		case <-woke:
			t.Fatalf("cycle %d published twice: a second loop is running", cycle)
		case <-time.After(100 * time.Millisecond):
		}
		release <- struct{}{}
	}
}

func TestEnablePersistsBeforeLoopStart(t *testing.T) {
	store := newFakeStore(testPeriodHours)
	s, _, release := testScheduler(store)
	defer s.Shutdown()
	defer close(release)

	if err := s.Enable("chan-1", 2); err != nil {
		t.Fatalf("enable: %v", err)
	}
	policy := store.Policy()
	if !policy.AutoReportEnabled || policy.AutoReportChannel != "chan-1" {
		t.Errorf("enable did not persist: %+v", policy)
	}
	if policy.ReportPeriodHours != 2 {
		t.Errorf("period override not persisted: %v", policy.ReportPeriodHours)
	}
}

func TestEnablePersistenceFailureDoesNotStartLoop(t *testing.T) {
	store := newFakeStore(testPeriodHours)
	store.saveErr = errors.New("disk full")
	s, woke, _ := testScheduler(store)

	if err := s.Enable("chan-1", 0); err == nil {
		t.Fatalf("expected the persistence failure to surface")
	}
	select {
	case <-woke:
		t.Fatalf("loop started despite a failed save")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDisableDuringSleepStopsNextWake(t *testing.T) {
	store := newFakeStore(float64(50*time.Millisecond) / float64(time.Hour))
	s, woke, release := testScheduler(store)
	defer close(release)

	if err := s.Enable("chan-1", 0); err != nil {
		t.Fatalf("enable: %v", err)
	}
	// Disable while the loop is still inside its first sleep.
	if err := s.Disable(); err != nil {
		t.Fatalf("disable: %v", err)
	}
	if store.Policy().AutoReportEnabled {
		t.Errorf("disable did not persist")
	}

	select {
	case <-woke:
		t.Fatalf("a wake happened after disable")
	case <-time.After(200 * time.Millisecond):
	}
	s.Shutdown()
}

func TestLoopSkipsEmptyDestination(t *testing.T) {
	store := newFakeStore(testPeriodHours)
	s, woke, release := testScheduler(store)
	defer s.Shutdown()
	defer close(release)

	if err := s.Enable("chan-1", 0); err != nil {
		t.Fatalf("enable: %v", err)
	}
	// Clear the destination mid-flight; the loop must skip cycles but stay up.
	if err := store.Update(func(p *model.PolicyConfig) { p.AutoReportChannel = "" }); err != nil {
		t.Fatalf("update: %v", err)
	}

	select {
	case ch := <-woke:
		t.Fatalf("cycle ran against an empty destination %q", ch)
	case <-time.After(100 * time.Millisecond):
	}
}
