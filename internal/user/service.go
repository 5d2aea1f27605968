package user

import (
	"fmt"

	"github.com/ankaahq/ankaa-access/internal/authz"
)

type Service struct {
	repo Repository
}

type Repository interface {
	GetByID(userID int64) (*User, error)
	List() ([]*User, error)
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetByID(userID int64) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

func (s *Service) List() ([]*User, error) {
	users, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// AccessSummary projects the permission matrix for one user into the shape
// the client renders from. Built entirely from the resolved sector
// references, so it never touches storage.
func (s *Service) AccessSummary(u *User) AccessSummaryDTO {
	access := u.Access()

	editable := make([]authz.ServiceOrderType, 0, len(authz.AllServiceOrderTypes))
	for _, t := range authz.AllServiceOrderTypes {
		if authz.CanEditServiceOrderOfType(access, t) {
			editable = append(editable, t)
		}
	}

	interactive := make(map[authz.EntityKind]bool, len(authz.AllEntityKinds))
	for _, kind := range authz.AllEntityKinds {
		interactive[kind] = authz.ShouldShowInteractiveElements(access, kind)
	}

	summary := AccessSummaryDTO{
		UserID:                  u.ID,
		IsTeamLeader:            authz.IsTeamLeader(access),
		VisibleOrderTypes:       authz.VisibleServiceOrderTypes(access),
		EditableOrderTypes:      editable,
		DetailedOrderView:       authz.HasDetailedServiceOrderView(access),
		CanCancelServiceOrders:  authz.CanCancelServiceOrder(access),
		InteractiveElements:     interactive,
		CanManagePaintProducing: authz.CanManagePaintProductions(access),
	}
	if u.ManagedSector != nil {
		id := u.ManagedSector.ID
		summary.ManagedSectorID = &id
	}
	return summary
}
