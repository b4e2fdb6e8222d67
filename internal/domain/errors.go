package domain

import "errors"

var (
	ErrNotFound          = errors.New("registro não encontrado")
	ErrTimeConflict      = errors.New("o horário selecionado conflita com outro agendamento")
	ErrInvalidTransition = errors.New("transição de status não permitida")
	ErrReasonRequired    = errors.New("o motivo do cancelamento é obrigatório")
	ErrInvalidDuration   = errors.New("duração inválida")
	ErrInvalidDate       = errors.New("formato de data inválido")
	ErrInvalidTime       = errors.New("formato de horário inválido")
	ErrEmailInUse        = errors.New("e-mail já cadastrado")
	ErrCPFInUse          = errors.New("CPF já cadastrado")
	ErrInvalidCPF        = errors.New("CPF inválido")
	ErrStorageDisabled   = errors.New("armazenamento de arquivos não configurado")
)
