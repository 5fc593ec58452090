package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gestaodeatendimentos/crm-atendimentos/internal/httperr"
)

func TestConflictFromCreate_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "uniq_atendimentos_agendado_slot",
	}

	err := conflictFromCreate(fmt.Errorf("insert: %w", pgErr))
	if !httperr.IsBusiness(err, "scheduling_conflict") {
		t.Fatalf("expected scheduling_conflict, got %v", err)
	}
}

func TestConflictFromCreate_PassesOtherErrorsThrough(t *testing.T) {
	plain := errors.New("connection reset")
	if got := conflictFromCreate(plain); got != plain {
		t.Fatalf("expected error unchanged, got %v", got)
	}

	// 23503 (FK) não é conflito de horário.
	fk := &pgconn.PgError{Code: "23503"}
	if httperr.IsBusiness(conflictFromCreate(fk), "scheduling_conflict") {
		t.Fatalf("foreign key violation must not map to scheduling_conflict")
	}

	if got := conflictFromCreate(nil); got != nil {
		t.Fatalf("expected nil passthrough, got %v", got)
	}
}
