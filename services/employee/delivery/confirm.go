package delivery

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// confirmRequestMsg asks the UI to show a yes/no modal. The answer goes back
// on reply, which is buffered so the Update loop never blocks sending it.
type confirmRequestMsg struct {
	prompt string
	reply  chan bool
}

// ModalConfirmer satisfies domain.Confirmer over the program's message loop:
// the store blocks in its own goroutine while the user answers the modal,
// keeping confirmation out of the rendering code.
type ModalConfirmer struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func NewModalConfirmer() *ModalConfirmer {
	return &ModalConfirmer{}
}

// Attach wires the confirmer to a running program. Must be called before any
// store operation that needs confirmation.
func (mc *ModalConfirmer) Attach(send func(tea.Msg)) {
	mc.mu.Lock()
	mc.send = send
	mc.mu.Unlock()
}

func (mc *ModalConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	mc.mu.Lock()
	send := mc.send
	mc.mu.Unlock()
	if send == nil {
		return false, nil
	}

	reply := make(chan bool, 1)
	send(confirmRequestMsg{prompt: prompt, reply: reply})

	select {
	case ok := <-reply:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
