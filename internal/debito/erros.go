package debito

import "fmt"

// ErroValidacao indica payload malformado ou campos obrigatórios ausentes
// para o tipo escolhido. É detectado antes de qualquer registro ser montado.
type ErroValidacao struct {
	Motivo string
}

func (e *ErroValidacao) Error() string { return e.Motivo }

func novoErroValidacao(format string, args ...interface{}) *ErroValidacao {
	return &ErroValidacao{Motivo: fmt.Sprintf(format, args...)}
}

// ErroReferenciaNaoEncontrada indica que um bankId/categoryId/paymentMethodId
// informado não existe nas coleções do workspace.
type ErroReferenciaNaoEncontrada struct {
	Recurso string
	ID      string
}

func (e *ErroReferenciaNaoEncontrada) Error() string {
	return fmt.Sprintf("%s %q não encontrado no workspace", e.Recurso, e.ID)
}
