package input

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"sync"
	"time"
)

// ErrStopped is returned by LineReader.Err when the reader was stopped
// before input ended.
var ErrStopped = errors.New("line reader stopped")

// LineReader delivers typed terminal lines on a channel so the caller can
// keep ticking while it waits.
type LineReader struct {
	lines chan string
	errs  chan error

	done     chan struct{}
	stopOnce sync.Once
}

// NewLineReader starts reading r line by line in the background.
func NewLineReader(r io.Reader) *LineReader {
	lr := &LineReader{
		lines: make(chan string),
		errs:  make(chan error, 1),
		done:  make(chan struct{}),
	}
	go func() {
		defer close(lr.lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lr.lines <- sc.Text():
			case <-lr.done:
				lr.errs <- ErrStopped
				return
			}
		}
		err := sc.Err()
		if err == nil {
			err = io.EOF
		}
		lr.errs <- err
	}()
	return lr
}

// Lines returns the channel of typed lines. It is closed when input ends or
// the reader is stopped.
func (lr *LineReader) Lines() <-chan string {
	return lr.lines
}

// Err returns the error that ended input, io.EOF on a clean end of input.
// It blocks until input has ended.
func (lr *LineReader) Err() error {
	return <-lr.errs
}

// Stop releases the reading goroutine once it has a line nobody will take.
// A read already blocked on r is not interrupted. Safe to call more than once.
func (lr *LineReader) Stop() {
	lr.stopOnce.Do(func() { close(lr.done) })
}

// FromLine wraps a typed line as a terminal raw input.
func FromLine(line string) RawInput {
	return RawInput{
		Device:    DeviceTerminal,
		Code:      strings.TrimRight(line, "\r\n"),
		Timestamp: time.Now(),
	}
}
