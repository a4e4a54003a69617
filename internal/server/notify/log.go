package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/taskplanner/internal/logging"
)

// LogSender writes messages to w instead of delivering them. Useful for
// local runs where the links are copied from the console.
type LogSender struct {
	mu     sync.Mutex
	w      io.Writer
	logger logging.Logger
}

func NewLogSender(w io.Writer, l logging.Logger) *LogSender {
	return &LogSender{w: w, logger: l.With("module", "mail")}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintf(s.w, "To: %s\nSubject: %s\n\n%s\n", msg.To, msg.Subject, msg.Body); err != nil {
		return err
	}
	s.logger.Info(ctx, "mail written", "to", msg.To, "subject", msg.Subject)
	return nil
}
