package atendimento

// ===============================
// Status do Atendimento
// ===============================

type Status string

const (
	StatusAgendado    Status = "agendado"
	StatusEmAndamento Status = "em_andamento"
	StatusConcluido   Status = "concluido"
	StatusCancelado   Status = "cancelado"
)

func All() []Status {
	return []Status{
		StatusAgendado,
		StatusEmAndamento,
		StatusConcluido,
		StatusCancelado,
	}
}

func IsValid(s Status) bool {
	switch s {
	case StatusAgendado, StatusEmAndamento, StatusConcluido, StatusCancelado:
		return true
	}
	return false
}

func InitialStatus() Status {
	return StatusAgendado
}
