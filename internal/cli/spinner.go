package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/x/term"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates a status line while a Graphviz layout runs. It draws
// nothing unless w is a terminal.
type spinner struct {
	w       io.Writer
	enabled bool
	ctx     context.Context
	cancel  context.CancelFunc
	started time.Time
	stopped chan struct{}
	stop    sync.Once

	mu      sync.Mutex
	message string
	width   int // widest line drawn so far, for clearing
}

// newSpinner creates a spinner that also stops when ctx is done.
func newSpinner(ctx context.Context, w io.Writer, message string) *spinner {
	sctx, cancel := context.WithCancel(ctx)
	return &spinner{
		w:       w,
		enabled: isTerminal(w),
		ctx:     sctx,
		cancel:  cancel,
		message: message,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

// Start begins the animation. It must be called at most once.
func (s *spinner) Start() {
	s.started = time.Now()
	s.stopped = make(chan struct{})
	if !s.enabled {
		close(s.stopped)
		return
	}
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clear()
				return
			case <-ticker.C:
				s.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

// SetMessage replaces the text next to the animation.
func (s *spinner) SetMessage(msg string) {
	s.mu.Lock()
	s.message = msg
	s.mu.Unlock()
}

// Stop ends the animation, clears the line and returns the time since Start.
// Calling Stop more than once is safe.
func (s *spinner) Stop() time.Duration {
	s.stop.Do(func() {
		s.cancel()
		if s.stopped != nil {
			<-s.stopped
		}
	})
	if s.started.IsZero() {
		return 0
	}
	return time.Since(s.started)
}

// Cancelled reports whether the spinner's context is done.
func (s *spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}

func (s *spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := frame + " " + s.message
	s.width = max(s.width, len([]rune(line)))
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
}

func (s *spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width > 0 {
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
	}
}
