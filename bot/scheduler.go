package bot

import (
	"fmt"
	"log"
	"sync"
	"time"

	"attendance-bot/model"
	"attendance-bot/utils"
)

// ReportScheduler owns the auto-report loop. It is either disabled or
// running exactly one loop; repeated enables are absorbed. State transitions
// persist to the policy store before touching the loop, so a restart while
// enabled resumes from the stored record.
type ReportScheduler struct {
	store    model.PolicyStore
	runCycle func(channelID string, periodHours float64, policy model.PolicyConfig) error
	logErr   func(operation string, err error)

	mu      sync.Mutex
	running bool
	done    chan struct{}
	wg      sync.WaitGroup
}

func NewReportScheduler(b *Bot) *ReportScheduler {
	return &ReportScheduler{
		store: b.Store,
		runCycle: func(channelID string, periodHours float64, policy model.PolicyConfig) error {
			channel := b.Pipeline.ResolveChannel(channelID)
			if channel == nil {
				log.Printf("Auto-report destination %s does not resolve, skipping this cycle", channelID)
				return nil
			}
			text, err := b.Pipeline.Generate(channel.GuildID, channelID, periodHours, policy)
			if err != nil {
				return err
			}
			return b.Pipeline.Publish(channelID, text)
		},
		logErr: func(operation string, err error) {
			log.Printf("Auto-report %s failed: %v", operation, err)
			utils.LogError(b.Session, b.cfg.LogChannelID, "AutoReport", operation, err.Error())
		},
	}
}

// Enable persists the enabled state and destination, then makes sure the
// loop is running. periodHours overrides the configured period when > 0.
func (s *ReportScheduler) Enable(channelID string, periodHours float64) error {
	err := s.store.Update(func(p *model.PolicyConfig) {
		p.AutoReportEnabled = true
		p.AutoReportChannel = channelID
		if periodHours > 0 {
			p.ReportPeriodHours = periodHours
		}
	})
	if err != nil {
		return fmt.Errorf("error persisting auto-report state: %w", err)
	}
	s.Start()
	return nil
}

// Disable persists the disabled state, then stops the loop. The persisted
// flag is written even if no loop is running.
func (s *ReportScheduler) Disable() error {
	err := s.store.Update(func(p *model.PolicyConfig) {
		p.AutoReportEnabled = false
	})
	if err != nil {
		return fmt.Errorf("error persisting auto-report state: %w", err)
	}
	s.Stop()
	return nil
}

// Start launches the loop if it is not already running. At most one loop
// exists per scheduler.
func (s *ReportScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.done = make(chan struct{})
	s.wg.Add(1)
	go s.loop(s.done)
}

// Stop signals the loop to exit at its next wake boundary. It does not wait.
func (s *ReportScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	close(s.done)
}

// Shutdown stops the loop and waits for it to drain.
func (s *ReportScheduler) Shutdown() {
	s.Stop()
	s.wg.Wait()
}

func (s *ReportScheduler) loop(done chan struct{}) {
	defer s.wg.Done()
	for {
		period := s.store.Policy().ReportPeriod()
		select {
		case <-done:
			return
		case <-time.After(period):
		}

		// Re-read at the wake boundary so a mid-sleep policy change applies
		// to this cycle's destination and the next cycle's period.
		policy := s.store.Policy()
		if !policy.AutoReportEnabled {
			return
		}
		if policy.AutoReportChannel == "" {
			continue
		}
		if err := s.runCycle(policy.AutoReportChannel, policy.ReportPeriodHours, policy); err != nil {
			s.logErr("cycle", err)
		}
	}
}
