package notify

import "go.uber.org/zap"

// Dispatcher desacopla o envio da confirmação do commit da mudança de
// status: a fila é best-effort e descarta quando cheia.
type Dispatcher struct {
	notifier Notifier
	log      *zap.Logger
	queue    chan ConfirmationMessage
}

func NewDispatcher(notifier Notifier, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		log:      log,
		queue:    make(chan ConfirmationMessage, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.notifier.SendConfirmation(msg); err != nil {
			// Falha de notificação é registrada e engolida; o status
			// confirmado já é o fato durável.
			d.log.Warn("confirmation notification failed",
				zap.String("phone", msg.OwnerPhone),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(msg ConfirmationMessage) {
	select {
	case d.queue <- msg:
	default:
		d.log.Warn("notification queue full, dropping message",
			zap.String("phone", msg.OwnerPhone),
		)
	}
}
