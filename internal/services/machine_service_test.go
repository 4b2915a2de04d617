package services

import (
	"database/sql"
	"testing"

	"laundry/internal/domain"
	"laundry/internal/pagination"
	"laundry/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func newService(t *testing.T) (MachineService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("open sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	svc := MachineService{
		Machines:     repositories.MachineRepository{DB: db},
		Condominiums: repositories.CondominiumRepository{DB: db},
	}
	return svc, mock
}

func condominiumRow(mock sqlmock.Sqlmock, id int64) {
	mock.ExpectQuery("FROM condominiums WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "contact_phone", "email"}).
			AddRow(id, "Edificio Central", "Av. Siempre Viva 742", "+56911111111", "central@example.com"))
}

func TestCreateRejectsProvidedID(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(domain.Machine{ID: 9, Identifier: "W1", Type: "WASHING", CondominiumID: 55})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "Machine ID should NOT be provided for creation" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCreateRejectsMissingCondominiumID(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(domain.Machine{Identifier: "W1", Type: "WASHING"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateMissingParentIsNotFound(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery("FROM condominiums WHERE id").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := svc.Create(domain.Machine{Identifier: "W1", Type: "WASHING", CondominiumID: 99})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if domain.IsConflict(err) {
		t.Fatalf("missing parent must not read as a conflict: %v", err)
	}
}

func TestCreateDuplicateInSameCondominium(t *testing.T) {
	svc, mock := newService(t)

	condominiumRow(mock, 55)
	mock.ExpectQuery("FROM machines WHERE condominium_id").
		WithArgs(int64(55), "W1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "identifier", "type", "condominium_id"}).
			AddRow(7, "W1", "WASHING", 55))

	_, err := svc.Create(domain.Machine{Identifier: "W1", Type: "WASHING", CondominiumID: 55})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if err.Error() != "Machine identifier already in use" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCreateSameIdentifierDifferentCondominium(t *testing.T) {
	svc, mock := newService(t)

	condominiumRow(mock, 56)
	mock.ExpectQuery("FROM machines WHERE condominium_id").
		WithArgs(int64(56), "W1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO machines").
		WithArgs("W1", "WASHING", int64(56)).
		WillReturnResult(sqlmock.NewResult(8, 1))

	detail, err := svc.Create(domain.Machine{Identifier: "W1", Type: "WASHING", CondominiumID: 56})
	if err != nil {
		t.Fatalf("same identifier under another condominium must succeed: %v", err)
	}
	if detail.Machine.ID != 8 || detail.Condominium.ID != 56 {
		t.Fatalf("unexpected detail: %+v", detail)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateRacingInsertReportedAsConflict(t *testing.T) {
	svc, mock := newService(t)

	condominiumRow(mock, 55)
	mock.ExpectQuery("FROM machines WHERE condominium_id").
		WithArgs(int64(55), "W1").
		WillReturnError(sql.ErrNoRows)
	// a concurrent create won the race between lookup and insert
	mock.ExpectExec("INSERT INTO machines").
		WithArgs("W1", "WASHING", int64(55)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'W1-55'"})

	_, err := svc.Create(domain.Machine{Identifier: "W1", Type: "WASHING", CondominiumID: 55})
	if !domain.IsConflict(err) {
		t.Fatalf("duplicate-key insert must surface as conflict, got %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery("FROM machines WHERE id").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := svc.GetByID(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestGetByIdentifierScoped(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery("FROM machines WHERE condominium_id").
		WithArgs(int64(55), "W1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "identifier", "type", "condominium_id"}).
			AddRow(7, "W1", "WASHING", 55))
	condominiumRow(mock, 55)

	detail, err := svc.GetByIdentifier(55, "W1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Machine.ID != 7 || detail.Condominium.ID != 55 {
		t.Fatalf("unexpected detail: %+v", detail)
	}
}

func TestUpdateMissingMachine(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery("SELECT 1 FROM machines").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := svc.Update(domain.Machine{ID: 99, Identifier: "W1", Type: "WASHING", CondominiumID: 55})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery("SELECT 1 FROM machines").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec("DELETE FROM machines").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.Delete(7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListMemoizesParents(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("FROM machines ORDER BY").
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "identifier", "type", "condominium_id"}).
			AddRow(7, "W1", "WASHING", 55).
			AddRow(8, "D1", "DRYING", 55))
	// both machines share condominium 55; only one parent lookup runs
	condominiumRow(mock, 55)

	req, err := pagination.Normalize(nil, nil, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	page, err := svc.List(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("expected two items, got %d", len(page.Items))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("parent lookup not memoized: %v", err)
	}
}
