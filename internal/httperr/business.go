package httperr

import "errors"

// BusinessError é uma violação de regra de negócio identificada por um
// código estável ("pet_not_found", "service_not_found", "invalid_status").
// Os use cases devolvem o código; a borda HTTP decide o status e a
// mensagem ao usuário.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness confere se err carrega o código dado, inclusive quando veio
// embrulhado por camadas intermediárias.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
