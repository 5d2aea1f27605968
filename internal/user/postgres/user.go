package user

import (
	"database/sql"

	"gorm.io/gorm"

	"github.com/ankaahq/ankaa-access/internal/authz"
	userDomain "github.com/ankaahq/ankaa-access/internal/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type userRow struct {
	ID                int64
	Email             string
	Name              string
	IsActive          bool
	SectorID          sql.NullInt64
	SectorName        sql.NullString
	SectorPrivileges  sql.NullString
	ManagedID         sql.NullInt64
	ManagedName       sql.NullString
	ManagedPrivileges sql.NullString
}

const userSelect = `
SELECT u.id, u.email, u.name, u.is_active,
       s.id AS sector_id, s.name AS sector_name, s.privileges AS sector_privileges,
       m.id AS managed_id, m.name AS managed_name, m.privileges AS managed_privileges
FROM users u
LEFT JOIN sectors s ON s.id = u.sector_id
LEFT JOIN sectors m ON m.manager_id = u.id`

func (r *Repository) GetByID(userID int64) (*userDomain.User, error) {
	row := r.db.Raw(userSelect+` WHERE u.id = ?`, userID).Row()

	u, err := scanUserRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, userDomain.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *Repository) List() ([]*userDomain.User, error) {
	rows, err := r.db.Raw(userSelect + ` ORDER BY u.name`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*userDomain.User
	for rows.Next() {
		var rec userRow
		if err := rows.Scan(
			&rec.ID, &rec.Email, &rec.Name, &rec.IsActive,
			&rec.SectorID, &rec.SectorName, &rec.SectorPrivileges,
			&rec.ManagedID, &rec.ManagedName, &rec.ManagedPrivileges,
		); err != nil {
			return nil, err
		}
		users = append(users, rec.toDomain())
	}
	return users, rows.Err()
}

func scanUserRow(row *sql.Row) (*userDomain.User, error) {
	var rec userRow
	if err := row.Scan(
		&rec.ID, &rec.Email, &rec.Name, &rec.IsActive,
		&rec.SectorID, &rec.SectorName, &rec.SectorPrivileges,
		&rec.ManagedID, &rec.ManagedName, &rec.ManagedPrivileges,
	); err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (rec userRow) toDomain() *userDomain.User {
	u := &userDomain.User{
		ID:       rec.ID,
		Email:    rec.Email,
		Name:     rec.Name,
		IsActive: rec.IsActive,
	}
	if rec.SectorID.Valid {
		u.Sector = &authz.Sector{
			ID:         rec.SectorID.Int64,
			Name:       rec.SectorName.String,
			Privileges: authz.Privilege(rec.SectorPrivileges.String),
		}
	}
	if rec.ManagedID.Valid {
		u.ManagedSector = &authz.Sector{
			ID:         rec.ManagedID.Int64,
			Name:       rec.ManagedName.String,
			Privileges: authz.Privilege(rec.ManagedPrivileges.String),
		}
	}
	return u
}
