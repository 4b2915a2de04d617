package repositories

import (
	"database/sql"

	"laundry/internal/domain"
	"laundry/internal/pagination"
)

// CondominiumRepository wraps DB access for the condominiums table.
// Errors come back raw (sql.ErrNoRows included); the service layer
// classifies them.
type CondominiumRepository struct {
	DB *sql.DB
}

func (r CondominiumRepository) FindByID(id int64) (domain.Condominium, error) {
	var c domain.Condominium
	err := r.DB.QueryRow(`
		SELECT id, name, address, contact_phone, email
		FROM condominiums WHERE id=?`, id).
		Scan(&c.ID, &c.Name, &c.Address, &c.ContactPhone, &c.Email)
	if err != nil {
		return domain.Condominium{}, err
	}
	return c, nil
}

func (r CondominiumRepository) ExistsByID(id int64) (bool, error) {
	var one int
	err := r.DB.QueryRow(`SELECT 1 FROM condominiums WHERE id=?`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Save inserts when the id is zero, otherwise replaces the full row.
func (r CondominiumRepository) Save(c domain.Condominium) (domain.Condominium, error) {
	if c.ID == 0 {
		res, err := r.DB.Exec(`
			INSERT INTO condominiums (name, address, contact_phone, email)
			VALUES (?, ?, ?, ?)`,
			c.Name, c.Address, c.ContactPhone, c.Email)
		if err != nil {
			return domain.Condominium{}, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return domain.Condominium{}, err
		}
		c.ID = id
		return c, nil
	}

	_, err := r.DB.Exec(`
		UPDATE condominiums SET name=?, address=?, contact_phone=?, email=?
		WHERE id=?`,
		c.Name, c.Address, c.ContactPhone, c.Email, c.ID)
	if err != nil {
		return domain.Condominium{}, err
	}
	return c, nil
}

// FindAll returns one store page; Number in the result is 0-based.
func (r CondominiumRepository) FindAll(req pagination.Request) (pagination.Page[domain.Condominium], error) {
	var total int64
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM condominiums`).Scan(&total); err != nil {
		return pagination.Page[domain.Condominium]{}, err
	}

	rows, err := r.DB.Query(`
		SELECT id, name, address, contact_phone, email
		FROM condominiums ORDER BY `+orderClause(req)+` LIMIT ? OFFSET ?`,
		req.Size, req.Offset())
	if err != nil {
		return pagination.Page[domain.Condominium]{}, err
	}
	defer rows.Close()

	items := []domain.Condominium{}
	for rows.Next() {
		var c domain.Condominium
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.ContactPhone, &c.Email); err != nil {
			return pagination.Page[domain.Condominium]{}, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return pagination.Page[domain.Condominium]{}, err
	}

	return pagination.Page[domain.Condominium]{
		Items:         items,
		Number:        req.Page - 1,
		Size:          req.Size,
		TotalPages:    totalPages(total, req.Size),
		TotalElements: total,
	}, nil
}
