package notify

import (
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// ConfirmationMessage carrega os dados mínimos da mensagem de confirmação
// enviada ao tutor.
type ConfirmationMessage struct {
	OwnerName  string
	OwnerPhone string
	PetName    string
	Date       string
	Time       string
	TotalPrice float64
}

// Notifier envia a confirmação por um canal externo. O envio é sempre
// best-effort: falha de notificação nunca desfaz a mudança de status.
type Notifier interface {
	SendConfirmation(msg ConfirmationMessage) error
}

// WhatsAppNotifier prepara o link wa.me com a mensagem pronta. A entrega
// de fato fica a cargo do canal do profissional; aqui o link é apenas
// registrado.
// TODO: trocar por envio via WhatsApp Business API quando houver conta.
type WhatsAppNotifier struct {
	log         *zap.Logger
	countryCode string
}

func NewWhatsAppNotifier(log *zap.Logger) *WhatsAppNotifier {
	return &WhatsAppNotifier{log: log, countryCode: "55"}
}

func (n *WhatsAppNotifier) SendConfirmation(msg ConfirmationMessage) error {
	phone := digitsOnly(msg.OwnerPhone)
	if phone == "" {
		return fmt.Errorf("owner phone has no digits")
	}

	body := fmt.Sprintf(
		"Agendamento Confirmado!\n\n"+
			"Olá %s!\n\n"+
			"Seu agendamento para %s foi confirmado:\n\n"+
			"Data: %s\nHorário: %s\nValor: R$ %.2f\n\n"+
			"Estamos ansiosos para cuidar do seu pet!",
		msg.OwnerName, msg.PetName, msg.Date, msg.Time, msg.TotalPrice,
	)

	link := fmt.Sprintf(
		"https://wa.me/%s%s?text=%s",
		n.countryCode, phone, url.QueryEscape(body),
	)

	n.log.Info("confirmation notification prepared",
		zap.String("phone", phone),
		zap.String("whatsapp_url", link),
	)

	return nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
