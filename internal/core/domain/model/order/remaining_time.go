package order

import (
	"fmt"
	"time"
)

// PreparationWindowMinutes is the fixed preparation allowance used to derive
// the countdown shown to customers.
const PreparationWindowMinutes = 30

// Fixed display messages. The Portuguese texts are part of the observable
// contract and must not be reworded.
const (
	MessageReadyForPickup = "Pedindo pronto para retirada"
	MessageDelivered      = "Pedido entregue ao cliente"
	MessageWindowExpired  = "O prazo de preparacao do pedido expirou"
)

// RemainingTimeMessage derives the human-readable preparation countdown for
// an order. It is a pure function: "now" is injected so callers and tests
// control the clock.
//
// Rules, in order:
//   - receivedAt nil: no countdown yet, ok is false
//   - Ready: MessageReadyForPickup regardless of elapsed time
//   - Finished: MessageDelivered regardless of elapsed time
//   - otherwise: with elapsed = floor(now - receivedAt) in minutes, the
//     window has expired when elapsed >= PreparationWindowMinutes, else the
//     message reports the remaining minutes ("Tempo restante: N minutos")
func RemainingTimeMessage(receivedAt *time.Time, status Status, now time.Time) (string, bool) {
	if receivedAt == nil {
		return "", false
	}

	switch status {
	case Ready:
		return MessageReadyForPickup, true
	case Finished:
		return MessageDelivered, true
	}

	elapsedMinutes := int(now.Sub(*receivedAt).Minutes())
	remaining := PreparationWindowMinutes - elapsedMinutes
	if remaining <= 0 {
		return MessageWindowExpired, true
	}

	return fmt.Sprintf("Tempo restante: %d minutos", remaining), true
}
