package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/NicabarNimble/jago/internal/log"
)

// Tracker interface defines methods for tracking operation progress
type Tracker interface {
	Start(operation string) *Operation
	Update(current, total int64)
	Complete()
	Error(err error)
}

// Operation represents a tracked operation
type Operation struct {
	Name         string
	StartTime    time.Time
	Status       string
	LastUpdate   time.Time
	LastCurrent  int64
	LastTotal    int64
	ProgressRate float64 // objects per second
	RateHistory  []float64
	EstimatedETA time.Time
}

const (
	rateHistorySize = 10 // Keep last 10 rate measurements for averaging
)

func newOperation(name string, now time.Time) *Operation {
	return &Operation{
		Name:        name,
		StartTime:   now,
		LastUpdate:  now,
		Status:      "in_progress",
		RateHistory: make([]float64, 0, rateHistorySize),
	}
}

// record folds a progress sample into the rate history and ETA
func (op *Operation) record(current, total int64, now time.Time) {
	// A lower count means git moved on to the next phase
	if current < op.LastCurrent {
		op.RateHistory = op.RateHistory[:0]
		op.ProgressRate = 0
		op.EstimatedETA = time.Time{}
	} else if op.LastCurrent > 0 {
		timeDiff := now.Sub(op.LastUpdate).Seconds()
		if timeDiff > 0 {
			currentRate := float64(current-op.LastCurrent) / timeDiff

			if len(op.RateHistory) >= rateHistorySize {
				op.RateHistory = op.RateHistory[1:]
			}
			op.RateHistory = append(op.RateHistory, currentRate)

			var totalRate float64
			for _, rate := range op.RateHistory {
				totalRate += rate
			}
			op.ProgressRate = totalRate / float64(len(op.RateHistory))

			if op.ProgressRate > 0 {
				remainingSeconds := float64(total-current) / op.ProgressRate
				op.EstimatedETA = now.Add(time.Duration(remainingSeconds) * time.Second)
			}
		}
	}

	op.LastUpdate = now
	op.LastCurrent = current
	op.LastTotal = total
}

// DefaultTracker records progress without printing anything
type DefaultTracker struct {
	CurrentOperation *Operation
}

// Start begins tracking a new operation
func (t *DefaultTracker) Start(operation string) *Operation {
	t.CurrentOperation = newOperation(operation, time.Now())
	return t.CurrentOperation
}

// Complete marks the operation as completed
func (t *DefaultTracker) Complete() {
	if t.CurrentOperation != nil {
		t.CurrentOperation.Status = "completed"
	}
}

// Error marks the operation as failed with an error
func (t *DefaultTracker) Error(err error) {
	if t.CurrentOperation != nil {
		t.CurrentOperation.Status = "failed"
	}
}

// Update updates the progress of the current operation
func (t *DefaultTracker) Update(current, total int64) {
	if t.CurrentOperation == nil {
		return
	}
	t.CurrentOperation.record(current, total, time.Now())
}

// ConsoleTracker implements Tracker for console output
type ConsoleTracker struct {
	out              io.Writer
	currentOperation *Operation
}

// NewConsoleTracker creates a progress tracker that writes to out
func NewConsoleTracker(out io.Writer) *ConsoleTracker {
	return &ConsoleTracker{out: out}
}

// Start begins tracking a new operation
func (t *ConsoleTracker) Start(operation string) *Operation {
	t.currentOperation = newOperation(operation, time.Now())
	fmt.Fprintf(t.out, "Starting: %s\n", operation)
	return t.currentOperation
}

// Update updates the progress of the current operation
func (t *ConsoleTracker) Update(current, total int64) {
	if t.currentOperation == nil || total <= 0 {
		return
	}

	t.currentOperation.record(current, total, time.Now())
	progress := float64(current) / float64(total)

	etaStr := "calculating..."
	if !t.currentOperation.EstimatedETA.IsZero() {
		remaining := time.Until(t.currentOperation.EstimatedETA).Round(time.Second)
		if remaining > 0 {
			etaStr = remaining.String()
		} else {
			etaStr = "almost done"
		}
	}

	fmt.Fprintf(t.out, "\r%s: %.2f%% (%.1f objects/sec, ETA: %s)",
		t.currentOperation.Name,
		progress*100,
		t.currentOperation.ProgressRate,
		etaStr)
}

// Complete marks the current operation as completed
func (t *ConsoleTracker) Complete() {
	if t.currentOperation == nil {
		return
	}
	duration := time.Since(t.currentOperation.StartTime).Round(time.Millisecond)
	fmt.Fprintf(t.out, "\nCompleted: %s (took %s)\n", t.currentOperation.Name, log.FgGreen("%v", duration))
	t.currentOperation = nil
}

// Error marks the current operation as failed
func (t *ConsoleTracker) Error(err error) {
	if t.currentOperation == nil {
		return
	}
	fmt.Fprintf(t.out, "\nError: %s - %s\n", t.currentOperation.Name, log.FgRed("%v", err))
	t.currentOperation = nil
}
