package handlers

import "testing"

func TestClienteSearchClause(t *testing.T) {
	cond, args := clienteSearchClause("9999-8888")

	want := "LOWER(nome) LIKE ? OR LOWER(email) LIKE ? OR cpf LIKE ? OR telefone LIKE ?"
	if cond != want {
		t.Fatalf("unexpected clause %q", cond)
	}
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %d", len(args))
	}
	// Substring do telefone: um pedaço do número gravado deve casar.
	for _, a := range args {
		if a != "%9999-8888%" {
			t.Fatalf("expected substring pattern, got %v", a)
		}
	}
}

func TestAtendimentoSearchClause(t *testing.T) {
	cond, args := atendimentoSearchClause("maria")

	want := "LOWER(clientes.nome) LIKE ? OR LOWER(atendimentos.descricao) LIKE ?"
	if cond != want {
		t.Fatalf("unexpected clause %q", cond)
	}
	if len(args) != 2 || args[0] != "%maria%" || args[1] != "%maria%" {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestAtendimentoStatusClause(t *testing.T) {
	for _, status := range []string{"agendado", "em_andamento", "concluido", "cancelado"} {
		cond, args, ok := atendimentoStatusClause(status)
		if !ok {
			t.Fatalf("status %q: expected valid", status)
		}
		if cond != "atendimentos.status = ?" {
			t.Fatalf("status %q: unexpected clause %q", status, cond)
		}
		if len(args) != 1 || args[0] != status {
			t.Fatalf("status %q: unexpected args %v", status, args)
		}
	}

	for _, status := range []string{"pendente", "AGENDADO", "x"} {
		if _, _, ok := atendimentoStatusClause(status); ok {
			t.Fatalf("status %q: expected invalid", status)
		}
	}
}
