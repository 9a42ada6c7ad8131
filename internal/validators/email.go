package validators

import (
	"net"
	"net/mail"
	"strings"
)

// IsEmailFormatValid verifica apenas a sintaxe do endereço.
func IsEmailFormatValid(email string) bool {
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

// IsEmailDomainValid confere se o domínio do e-mail resolve (MX ou A).
// Usado só no cadastro do profissional; consulta DNS, então não entra em
// caminhos quentes.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
