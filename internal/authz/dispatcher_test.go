package authz_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ankaahq/ankaa-access/internal/authz"
)

// randomUser covers nil users, users without sectors, every privilege and
// the leader variants.
func randomUser(rng *rand.Rand) *authz.User {
	switch rng.Intn(4) {
	case 0:
		return nil
	case 1:
		return &authz.User{ID: rng.Int63n(1000)}
	case 2:
		p := authz.AllPrivileges[rng.Intn(len(authz.AllPrivileges))]
		return userWith(p)
	default:
		return leaderOf(rng.Int63n(50))
	}
}

var _ = Describe("ShouldShowInteractiveElements", func() {
	It("agrees with the per-entity edit checks for every privilege", func() {
		users := []*authz.User{nil, &authz.User{ID: 3}, leaderOf(4)}
		for _, p := range authz.AllPrivileges {
			users = append(users, userWith(p))
		}

		for _, u := range users {
			Expect(authz.ShouldShowInteractiveElements(u, authz.EntityTask)).To(Equal(authz.CanEditTasks(u)))
			Expect(authz.ShouldShowInteractiveElements(u, authz.EntityCut)).To(Equal(authz.CanEditCuts(u)))
			Expect(authz.ShouldShowInteractiveElements(u, authz.EntityItem)).To(Equal(authz.CanEditItems(u)))
			Expect(authz.ShouldShowInteractiveElements(u, authz.EntityPaint)).To(Equal(authz.CanEditPaints(u)))
			Expect(authz.ShouldShowInteractiveElements(u, authz.EntityCustomer)).To(Equal(authz.CanEditCustomers(u)))
			Expect(authz.ShouldShowInteractiveElements(u, authz.EntityOrder)).To(Equal(authz.CanEditOrders(u)))
			Expect(authz.ShouldShowInteractiveElements(u, authz.EntityBorrow)).To(Equal(authz.CanEditBorrows(u)))
			Expect(authz.ShouldShowInteractiveElements(u, authz.EntityPPE)).To(Equal(authz.CanEditPPEDeliveries(u)))
			Expect(authz.ShouldShowInteractiveElements(u, authz.EntityMaintenance)).To(Equal(authz.CanEditMaintenance(u)))
			Expect(authz.ShouldShowInteractiveElements(u, authz.EntityExternalWithdrawal)).To(Equal(authz.CanEditExternalWithdrawals(u)))
			Expect(authz.ShouldShowInteractiveElements(u, authz.EntitySupplier)).To(Equal(authz.CanEditSuppliers(u)))
			Expect(authz.ShouldShowInteractiveElements(u, authz.EntityHR)).To(Equal(authz.CanEditHumanResources(u)))
			Expect(authz.ShouldShowInteractiveElements(u, authz.EntityUser)).To(Equal(authz.CanEditUsers(u)))
			Expect(authz.ShouldShowInteractiveElements(u, authz.EntityPaintBrand)).To(Equal(authz.CanEditPaintBrands(u)))
			Expect(authz.ShouldShowInteractiveElements(u, authz.EntityPaintType)).To(Equal(authz.CanEditPaintTypes(u)))
			Expect(authz.ShouldShowInteractiveElements(u, authz.EntityPaintFormula)).To(Equal(authz.CanEditPaintFormulas(u)))
			Expect(authz.ShouldShowInteractiveElements(u, authz.EntityGarage)).To(Equal(authz.CanEditGarages(u)))
			Expect(authz.ShouldShowInteractiveElements(u, authz.EntityAirbrushing)).To(Equal(authz.CanEditAirbrushings(u)))
			Expect(authz.ShouldShowInteractiveElements(u, authz.EntityObservation)).To(Equal(authz.CanEditObservations(u)))
		}
	})

	It("returns false for unknown kinds", func() {
		Expect(authz.ShouldShowInteractiveElements(userWith(authz.PrivilegeAdmin), authz.EntityKind("serviceOrder"))).To(BeFalse())
		Expect(authz.ShouldShowInteractiveElements(userWith(authz.PrivilegeAdmin), authz.EntityKind(""))).To(BeFalse())
	})
})

var _ = Describe("Purity", func() {
	It("yields identical results on repeated calls with the same inputs", func() {
		rng := rand.New(rand.NewSource(42))

		for i := 0; i < 500; i++ {
			u := randomUser(rng)
			kind := authz.AllEntityKinds[rng.Intn(len(authz.AllEntityKinds))]
			t := authz.AllServiceOrderTypes[rng.Intn(len(authz.AllServiceOrderTypes))]
			s := authz.AllServiceOrderStatuses[rng.Intn(len(authz.AllServiceOrderStatuses))]

			var taskSector *int64
			if rng.Intn(2) == 0 {
				taskSector = sectorID(rng.Int63n(50))
			}

			Expect(authz.ShouldShowInteractiveElements(u, kind)).
				To(Equal(authz.ShouldShowInteractiveElements(u, kind)))
			Expect(authz.VisibleServiceOrderTypes(u)).
				To(Equal(authz.VisibleServiceOrderTypes(u)))
			Expect(authz.AllowedServiceOrderStatuses(u, t, s)).
				To(Equal(authz.AllowedServiceOrderStatuses(u, t, s)))
			Expect(authz.CanLeaderManageTask(u, taskSector)).
				To(Equal(authz.CanLeaderManageTask(u, taskSector)))
			Expect(authz.CanRequestCutForTask(u, taskSector)).
				To(Equal(authz.CanRequestCutForTask(u, taskSector)))
		}
	})
})
