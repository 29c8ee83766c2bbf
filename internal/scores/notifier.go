// Package scores relays score notifications from the simulation to storage
// on a background goroutine.
package scores

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazechase/internal/games/chase"
	"github.com/vovakirdan/mazechase/internal/storage"
)

// Sink persists scores. *storage.Store implements it.
type Sink interface {
	RecordBestScore(username string, score int) error
	SaveRun(run storage.Run) (int64, error)
}

// Notifier implements chase.ScoreReporter. Reports never block the caller.
//
// Pending score reports are kept per player and a newer report replaces an
// unwritten older one, so a stalled sink costs at most one write per player.
// Finished runs are queued in order and never dropped.
type Notifier struct {
	sink   Sink // Optional, can be nil
	logger *log.Logger

	mu      sync.Mutex // Guards everything below except the atomics
	closed  bool
	pending map[string]int
	order   []string // Players with a pending score, first report first
	runs    []chase.RunResult
	latest  map[string]int

	wake chan struct{} // Capacity 1; closed by Close
	done chan struct{}

	started    atomic.Bool
	superseded atomic.Uint64
}

var _ chase.ScoreReporter = (*Notifier)(nil)

// NewNotifier creates a notifier. Call Start to begin writing to sink.
func NewNotifier(sink Sink, logger *log.Logger) *Notifier {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Notifier{
		sink:    sink,
		logger:  logger,
		pending: make(map[string]int),
		latest:  make(map[string]int),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// Start begins background processing. Calling it more than once has no effect.
func (n *Notifier) Start() {
	if n.started.Swap(true) {
		return
	}
	go n.process()
}

// Close stops accepting reports, waits for pending ones to be written and
// stops the worker.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	close(n.wake)
	n.mu.Unlock()

	if n.started.Load() {
		<-n.done
	}
}

// ReportScore records score as the player's latest value and queues it for storage.
func (n *Notifier) ReportScore(username string, score int) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.latest[username] = score
	if n.closed {
		return nil
	}
	if _, ok := n.pending[username]; ok {
		n.superseded.Add(1)
	} else {
		n.order = append(n.order, username)
	}
	n.pending[username] = score
	n.signal()
	return nil
}

// ReportOutcome queues a finished run for storage.
func (n *Notifier) ReportOutcome(r chase.RunResult) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.latest[r.Username] = r.Score
	if n.closed {
		return nil
	}
	n.runs = append(n.runs, r)
	n.signal()
	return nil
}

// signal wakes the worker. Callers hold mu and have checked closed.
func (n *Notifier) signal() {
	select {
	case n.wake <- struct{}{}:
	default:
	}
}

// Latest returns the score most recently reported for username.
func (n *Notifier) Latest(username string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.latest[username]
}

// ResetLatest clears the displayed score of username for a new round.
func (n *Notifier) ResetLatest(username string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.latest, username)
}

// Superseded returns how many score reports were replaced by a newer report
// for the same player before being written.
func (n *Notifier) Superseded() uint64 {
	return n.superseded.Load()
}

func (n *Notifier) process() {
	defer close(n.done)
	for range n.wake {
		n.flush()
	}
	n.flush()
}

// flush writes everything pending: scores in first-report order, then runs.
func (n *Notifier) flush() {
	n.mu.Lock()
	order, pending, runs := n.order, n.pending, n.runs
	n.order, n.pending, n.runs = nil, make(map[string]int), nil
	n.mu.Unlock()

	for _, username := range order {
		n.recordBest(username, pending[username])
	}
	for _, r := range runs {
		n.saveRun(r)
	}
}

func (n *Notifier) recordBest(username string, score int) {
	if n.sink == nil || username == "" {
		return
	}
	if err := n.sink.RecordBestScore(username, score); err != nil {
		n.logger.Warn("record best score failed", "user", username, "score", score, "err", err)
	}
}

func (n *Notifier) saveRun(r chase.RunResult) {
	if n.sink == nil || r.Username == "" {
		return
	}
	n.recordBest(r.Username, r.Score)

	_, err := n.sink.SaveRun(storage.Run{
		SessionID: r.SessionID,
		Username:  r.Username,
		Score:     r.Score,
		Total:     r.Total,
		Outcome:   string(r.Outcome),
	})
	if err != nil {
		n.logger.Warn("save run failed", "user", r.Username, "session", r.SessionID, "err", err)
		return
	}
	n.logger.Debug("run saved", "user", r.Username, "score", r.Score, "outcome", r.Outcome)
}
