package atendimento

import "testing"

func TestIsValid(t *testing.T) {
	for _, s := range All() {
		if !IsValid(s) {
			t.Fatalf("expected %q valid", s)
		}
	}

	for _, s := range []Status{"", "pendente", "AGENDADO", "concluído"} {
		if IsValid(s) {
			t.Fatalf("expected %q invalid", s)
		}
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusAgendado {
		t.Fatalf("expected initial status agendado, got %q", InitialStatus())
	}
}
