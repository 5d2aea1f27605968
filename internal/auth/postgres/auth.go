package auth

import (
	"database/sql"
	"fmt"

	"gorm.io/gorm"

	"github.com/ankaahq/ankaa-access/internal/auth"
	"github.com/ankaahq/ankaa-access/internal/authz"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetPasswordForEmail(email string) (string, int64, error) {
	var passwordHash string
	var userID int64
	query := `SELECT id, password_hash FROM users WHERE email = ? AND is_active = true`

	row := r.db.Raw(query, email).Row()
	if err := row.Scan(&userID, &passwordHash); err != nil {
		if err == sql.ErrNoRows {
			return "", 0, fmt.Errorf("user not found")
		}
		return "", 0, err
	}
	return passwordHash, userID, nil
}

// GetSessionUser loads a user together with the sector they belong to and the
// sector they manage, if any. A user manages a sector when that sector's
// manager_id points at them.
func (r *Repository) GetSessionUser(userID int64) (*auth.User, error) {
	var user auth.User

	query := `SELECT id, email, name FROM users WHERE id = ? AND is_active = true`

	row := r.db.Raw(query, userID).Row()
	if err := row.Scan(&user.ID, &user.Email, &user.Name); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}

	sectorQuery := `SELECT s.id, s.name, s.privileges
	               FROM sectors s
	               JOIN users u ON u.sector_id = s.id
	               WHERE u.id = ?`

	sector, err := r.scanSector(sectorQuery, userID)
	if err != nil {
		return nil, err
	}
	user.Sector = sector

	managedQuery := `SELECT s.id, s.name, s.privileges
	                FROM sectors s
	                WHERE s.manager_id = ?`

	managed, err := r.scanSector(managedQuery, userID)
	if err != nil {
		return nil, err
	}
	user.ManagedSector = managed

	return &user, nil
}

func (r *Repository) scanSector(query string, userID int64) (*authz.Sector, error) {
	var s authz.Sector
	var privileges string

	row := r.db.Raw(query, userID).Row()
	if err := row.Scan(&s.ID, &s.Name, &privileges); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	s.Privileges = authz.Privilege(privileges)
	return &s, nil
}
