package repositories

import (
	"database/sql"

	"laundry/internal/domain"
	"laundry/internal/pagination"
)

// MachineRepository wraps DB access for the machines table.
type MachineRepository struct {
	DB *sql.DB
}

func (r MachineRepository) FindByID(id int64) (domain.Machine, error) {
	var m domain.Machine
	err := r.DB.QueryRow(`
		SELECT id, identifier, type, condominium_id
		FROM machines WHERE id=?`, id).
		Scan(&m.ID, &m.Identifier, &m.Type, &m.CondominiumID)
	if err != nil {
		return domain.Machine{}, err
	}
	return m, nil
}

func (r MachineRepository) ExistsByID(id int64) (bool, error) {
	var one int
	err := r.DB.QueryRow(`SELECT 1 FROM machines WHERE id=?`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FindByCondominiumAndIdentifier is the scoped-uniqueness lookup: the
// same identifier may exist under other condominiums.
func (r MachineRepository) FindByCondominiumAndIdentifier(condominiumID int64, identifier string) (domain.Machine, error) {
	var m domain.Machine
	err := r.DB.QueryRow(`
		SELECT id, identifier, type, condominium_id
		FROM machines WHERE condominium_id=? AND identifier=?`,
		condominiumID, identifier).
		Scan(&m.ID, &m.Identifier, &m.Type, &m.CondominiumID)
	if err != nil {
		return domain.Machine{}, err
	}
	return m, nil
}

// Save inserts when the id is zero, otherwise replaces the full row.
// Inserts can fail with a duplicate-key error from the composite unique
// index; callers classify that with IsDuplicateEntry.
func (r MachineRepository) Save(m domain.Machine) (domain.Machine, error) {
	if m.ID == 0 {
		res, err := r.DB.Exec(`
			INSERT INTO machines (identifier, type, condominium_id)
			VALUES (?, ?, ?)`,
			m.Identifier, m.Type, m.CondominiumID)
		if err != nil {
			return domain.Machine{}, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return domain.Machine{}, err
		}
		m.ID = id
		return m, nil
	}

	_, err := r.DB.Exec(`
		UPDATE machines SET identifier=?, type=?, condominium_id=?
		WHERE id=?`,
		m.Identifier, m.Type, m.CondominiumID, m.ID)
	if err != nil {
		return domain.Machine{}, err
	}
	return m, nil
}

func (r MachineRepository) DeleteByID(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM machines WHERE id=?`, id)
	return err
}

// FindAll returns one store page; Number in the result is 0-based.
func (r MachineRepository) FindAll(req pagination.Request) (pagination.Page[domain.Machine], error) {
	var total int64
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM machines`).Scan(&total); err != nil {
		return pagination.Page[domain.Machine]{}, err
	}

	rows, err := r.DB.Query(`
		SELECT id, identifier, type, condominium_id
		FROM machines ORDER BY `+orderClause(req)+` LIMIT ? OFFSET ?`,
		req.Size, req.Offset())
	if err != nil {
		return pagination.Page[domain.Machine]{}, err
	}
	defer rows.Close()

	items := []domain.Machine{}
	for rows.Next() {
		var m domain.Machine
		if err := rows.Scan(&m.ID, &m.Identifier, &m.Type, &m.CondominiumID); err != nil {
			return pagination.Page[domain.Machine]{}, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return pagination.Page[domain.Machine]{}, err
	}

	return pagination.Page[domain.Machine]{
		Items:         items,
		Number:        req.Page - 1,
		Size:          req.Size,
		TotalPages:    totalPages(total, req.Size),
		TotalElements: total,
	}, nil
}
