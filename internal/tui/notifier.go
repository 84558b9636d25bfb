package tui

import (
	"sync"

	"github.com/MKhiriev/go-user-list/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

// MessageSender delivers messages into a running program. *tea.Program
// implements it.
type MessageSender interface {
	Send(msg tea.Msg)
}

// Notifier turns controller alerts into the blocking error overlay of the
// running program. Alerts raised while no program is attached are only
// logged.
type Notifier struct {
	mu     sync.RWMutex
	sender MessageSender

	logger *logger.Logger
}

func NewNotifier(logger *logger.Logger) *Notifier {
	return &Notifier{logger: logger}
}

// Attach routes subsequent alerts to sender. Passing nil detaches.
func (n *Notifier) Attach(sender MessageSender) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sender = sender
}

// Alert implements service.Notifier.
func (n *Notifier) Alert(message string) {
	n.mu.RLock()
	sender := n.sender
	n.mu.RUnlock()

	n.logger.Warn().Str("alert", message).Bool("shown", sender != nil).Msg("alert raised")
	if sender == nil {
		return
	}
	sender.Send(alertMsg{message: message})
}
