package tui

import "github.com/thenoetrevino/applyboard/internal/notify"

// ToastChannel returns a notifier that forwards to the returned channel.
// Sends never block: when the board falls behind, extra toasts are dropped.
func ToastChannel(buffer int) (notify.Notifier, <-chan notify.Notification) {
	ch := make(chan notify.Notification, buffer)
	return notify.Func(func(n notify.Notification) {
		select {
		case ch <- n:
		default:
		}
	}), ch
}
