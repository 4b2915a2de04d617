package services

import (
	"database/sql"
	"errors"
	"fmt"

	"laundry/internal/domain"
	"laundry/internal/pagination"
	"laundry/internal/repositories"
)

type CondominiumService struct {
	Condominiums repositories.CondominiumRepository
}

func (s CondominiumService) Create(c domain.Condominium) (domain.Condominium, error) {
	if c.ID != 0 {
		return domain.Condominium{}, domain.ValidationError{Field: "id", Msg: "Condominium ID should NOT be provided for creation"}
	}
	created, err := s.Condominiums.Save(c)
	if err != nil {
		return domain.Condominium{}, fmt.Errorf("insert condominium: %w", err)
	}
	return created, nil
}

func (s CondominiumService) GetByID(id int64) (domain.Condominium, error) {
	c, err := s.Condominiums.FindByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Condominium{}, domain.NotFoundError{Resource: "Condominium"}
	}
	if err != nil {
		return domain.Condominium{}, fmt.Errorf("load condominium %d: %w", id, err)
	}
	return c, nil
}

func (s CondominiumService) List(req pagination.Request) (pagination.Page[domain.Condominium], error) {
	page, err := s.Condominiums.FindAll(req)
	if err != nil {
		return pagination.Page[domain.Condominium]{}, fmt.Errorf("list condominiums: %w", err)
	}
	return page, nil
}
