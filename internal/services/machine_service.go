package services

import (
	"database/sql"
	"errors"
	"fmt"

	"laundry/internal/domain"
	"laundry/internal/pagination"
	"laundry/internal/repositories"
)

// MachineDetail pairs a machine with its condominium; machine payloads
// embed the full parent, not just its id.
type MachineDetail struct {
	Machine     domain.Machine
	Condominium domain.Condominium
}

// MachineService owns the machine workflows. Create enforces the
// per-condominium identifier uniqueness invariant.
type MachineService struct {
	Machines     repositories.MachineRepository
	Condominiums repositories.CondominiumRepository
}

// Create runs the guarded creation sequence: shape checks, parent
// resolution, scoped duplicate lookup, insert. The duplicate lookup is
// a fast path only; the composite unique key on the machines table is
// what actually closes the race between concurrent creates, and a
// duplicate-key failure on insert is reported as the same conflict.
func (s MachineService) Create(m domain.Machine) (MachineDetail, error) {
	if m.ID != 0 {
		return MachineDetail{}, domain.ValidationError{Field: "id", Msg: "Machine ID should NOT be provided for creation"}
	}
	if m.CondominiumID == 0 {
		return MachineDetail{}, domain.ValidationError{Field: "condominiumId", Msg: "Condominium ID should NOT be null"}
	}

	condominium, err := s.Condominiums.FindByID(m.CondominiumID)
	if errors.Is(err, sql.ErrNoRows) {
		return MachineDetail{}, domain.NotFoundError{Resource: "Condominium"}
	}
	if err != nil {
		return MachineDetail{}, fmt.Errorf("resolve condominium %d: %w", m.CondominiumID, err)
	}

	_, err = s.Machines.FindByCondominiumAndIdentifier(m.CondominiumID, m.Identifier)
	if err == nil {
		return MachineDetail{}, domain.ConflictError{Resource: "Machine", Msg: "Machine identifier already in use"}
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return MachineDetail{}, fmt.Errorf("check machine identifier %q: %w", m.Identifier, err)
	}

	created, err := s.Machines.Save(m)
	if repositories.IsDuplicateEntry(err) {
		return MachineDetail{}, domain.ConflictError{Resource: "Machine", Msg: "Machine identifier already in use", Err: err}
	}
	if err != nil {
		return MachineDetail{}, fmt.Errorf("insert machine: %w", err)
	}

	return MachineDetail{Machine: created, Condominium: condominium}, nil
}

func (s MachineService) GetByID(id int64) (MachineDetail, error) {
	m, err := s.Machines.FindByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return MachineDetail{}, domain.NotFoundError{Resource: "Machine"}
	}
	if err != nil {
		return MachineDetail{}, fmt.Errorf("load machine %d: %w", id, err)
	}
	return s.withCondominium(m)
}

// GetByIdentifier resolves a machine by its identifier within one
// condominium; the identifier alone is not globally unique.
func (s MachineService) GetByIdentifier(condominiumID int64, identifier string) (MachineDetail, error) {
	m, err := s.Machines.FindByCondominiumAndIdentifier(condominiumID, identifier)
	if errors.Is(err, sql.ErrNoRows) {
		return MachineDetail{}, domain.NotFoundError{Resource: "Machine"}
	}
	if err != nil {
		return MachineDetail{}, fmt.Errorf("load machine by identifier %q: %w", identifier, err)
	}
	return s.withCondominium(m)
}

// Update replaces the row wholesale; there is no partial patch.
func (s MachineService) Update(m domain.Machine) (MachineDetail, error) {
	if m.ID == 0 {
		return MachineDetail{}, domain.ValidationError{Field: "id", Msg: "Machine ID must be provided for update"}
	}
	if m.CondominiumID == 0 {
		return MachineDetail{}, domain.ValidationError{Field: "condominiumId", Msg: "Condominium ID should NOT be null"}
	}

	exists, err := s.Machines.ExistsByID(m.ID)
	if err != nil {
		return MachineDetail{}, fmt.Errorf("check machine %d: %w", m.ID, err)
	}
	if !exists {
		return MachineDetail{}, domain.NotFoundError{Resource: "Machine"}
	}

	condominium, err := s.Condominiums.FindByID(m.CondominiumID)
	if errors.Is(err, sql.ErrNoRows) {
		return MachineDetail{}, domain.NotFoundError{Resource: "Condominium"}
	}
	if err != nil {
		return MachineDetail{}, fmt.Errorf("resolve condominium %d: %w", m.CondominiumID, err)
	}

	updated, err := s.Machines.Save(m)
	if repositories.IsDuplicateEntry(err) {
		return MachineDetail{}, domain.ConflictError{Resource: "Machine", Msg: "Machine identifier already in use", Err: err}
	}
	if err != nil {
		return MachineDetail{}, fmt.Errorf("update machine %d: %w", m.ID, err)
	}

	return MachineDetail{Machine: updated, Condominium: condominium}, nil
}

func (s MachineService) Delete(id int64) error {
	exists, err := s.Machines.ExistsByID(id)
	if err != nil {
		return fmt.Errorf("check machine %d: %w", id, err)
	}
	if !exists {
		return domain.NotFoundError{Resource: "Machine"}
	}
	if err := s.Machines.DeleteByID(id); err != nil {
		return fmt.Errorf("delete machine %d: %w", id, err)
	}
	return nil
}

// List returns one store page of machines with their condominiums
// resolved. Parents repeat across a page, so lookups are memoized.
func (s MachineService) List(req pagination.Request) (pagination.Page[MachineDetail], error) {
	page, err := s.Machines.FindAll(req)
	if err != nil {
		return pagination.Page[MachineDetail]{}, fmt.Errorf("list machines: %w", err)
	}

	parents := map[int64]domain.Condominium{}
	details := make([]MachineDetail, 0, len(page.Items))
	for _, m := range page.Items {
		condominium, ok := parents[m.CondominiumID]
		if !ok {
			condominium, err = s.Condominiums.FindByID(m.CondominiumID)
			if err != nil {
				return pagination.Page[MachineDetail]{}, fmt.Errorf("resolve condominium %d: %w", m.CondominiumID, err)
			}
			parents[m.CondominiumID] = condominium
		}
		details = append(details, MachineDetail{Machine: m, Condominium: condominium})
	}

	return pagination.Page[MachineDetail]{
		Items:         details,
		Number:        page.Number,
		Size:          page.Size,
		TotalPages:    page.TotalPages,
		TotalElements: page.TotalElements,
	}, nil
}

func (s MachineService) withCondominium(m domain.Machine) (MachineDetail, error) {
	condominium, err := s.Condominiums.FindByID(m.CondominiumID)
	if err != nil {
		return MachineDetail{}, fmt.Errorf("resolve condominium %d: %w", m.CondominiumID, err)
	}
	return MachineDetail{Machine: m, Condominium: condominium}, nil
}
