package validators

import (
	"net"
	"strings"
)

// HasResolvableEmailDomain faz uma checagem barata de typo no cadastro:
// o domínio do e-mail precisa ter MX ou, na falta, um registro de endereço.
func HasResolvableEmailDomain(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
