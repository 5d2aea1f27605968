package authz_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ankaahq/ankaa-access/internal/authz"
)

var _ = Describe("Privilege resolver", func() {
	Describe("IsTeamLeader", func() {
		It("is true only when the user manages a sector", func() {
			Expect(authz.IsTeamLeader(leaderOf(5))).To(BeTrue())
			Expect(authz.IsTeamLeader(userWith(authz.PrivilegeProduction))).To(BeFalse())
		})

		It("is false for a nil user", func() {
			Expect(authz.IsTeamLeader(nil)).To(BeFalse())
		})
	})

	Describe("HasAnyPrivilege", func() {
		It("matches the sector privilege against the list", func() {
			u := userWith(authz.PrivilegeWarehouse)
			Expect(authz.HasAnyPrivilege(u, authz.PrivilegeAdmin, authz.PrivilegeWarehouse)).To(BeTrue())
			Expect(authz.HasAnyPrivilege(u, authz.PrivilegeAdmin)).To(BeFalse())
		})

		It("fails closed for nil user and missing sector", func() {
			Expect(authz.HasAnyPrivilege(nil, authz.PrivilegeAdmin)).To(BeFalse())
			Expect(authz.HasAnyPrivilege(&authz.User{ID: 9}, authz.PrivilegeAdmin)).To(BeFalse())
		})
	})
})

var _ = Describe("Entity permission matrix", func() {
	type check func(*authz.User) bool

	editChecks := map[authz.EntityKind]check{
		authz.EntityTask:               authz.CanEditTasks,
		authz.EntityCut:                authz.CanEditCuts,
		authz.EntityItem:               authz.CanEditItems,
		authz.EntityPaint:              authz.CanEditPaints,
		authz.EntityCustomer:           authz.CanEditCustomers,
		authz.EntityOrder:              authz.CanEditOrders,
		authz.EntityBorrow:             authz.CanEditBorrows,
		authz.EntityPPE:                authz.CanEditPPEDeliveries,
		authz.EntityMaintenance:        authz.CanEditMaintenance,
		authz.EntityExternalWithdrawal: authz.CanEditExternalWithdrawals,
		authz.EntitySupplier:           authz.CanEditSuppliers,
		authz.EntityHR:                 authz.CanEditHumanResources,
		authz.EntityUser:               authz.CanEditUsers,
		authz.EntityPaintBrand:         authz.CanEditPaintBrands,
		authz.EntityPaintType:          authz.CanEditPaintTypes,
		authz.EntityPaintFormula:       authz.CanEditPaintFormulas,
		authz.EntityGarage:             authz.CanEditGarages,
		authz.EntityAirbrushing:        authz.CanEditAirbrushings,
		authz.EntityObservation:        authz.CanEditObservations,
	}

	It("fails closed on a nil user for every kind", func() {
		for kind, canEdit := range editChecks {
			Expect(canEdit(nil)).To(BeFalse(), "kind %s", kind)
		}
		Expect(authz.CanDeleteTasks(nil)).To(BeFalse())
		Expect(authz.CanDeleteItems(nil)).To(BeFalse())
		Expect(authz.CanDeleteCustomers(nil)).To(BeFalse())
	})

	It("grants every edit to administrators", func() {
		admin := userWith(authz.PrivilegeAdmin)
		for kind, canEdit := range editChecks {
			Expect(canEdit(admin)).To(BeTrue(), "kind %s", kind)
		}
	})

	It("scopes the warehouse entities to warehouse and admin", func() {
		warehouse := userWith(authz.PrivilegeWarehouse)
		basic := userWith(authz.PrivilegeBasic)

		Expect(authz.CanEditItems(warehouse)).To(BeTrue())
		Expect(authz.CanEditOrders(warehouse)).To(BeTrue())
		Expect(authz.CanEditBorrows(warehouse)).To(BeTrue())
		Expect(authz.CanEditPPEDeliveries(warehouse)).To(BeTrue())
		Expect(authz.CanEditMaintenance(warehouse)).To(BeTrue())
		Expect(authz.CanEditExternalWithdrawals(warehouse)).To(BeTrue())
		Expect(authz.CanEditSuppliers(warehouse)).To(BeTrue())
		Expect(authz.CanEditPaints(warehouse)).To(BeTrue())

		Expect(authz.CanEditItems(basic)).To(BeFalse())
		Expect(authz.CanEditPaints(basic)).To(BeFalse())
	})

	It("aliases delete and batch to edit for the warehouse entities", func() {
		for _, u := range []*authz.User{userWith(authz.PrivilegeWarehouse), userWith(authz.PrivilegeLogistic), nil} {
			Expect(authz.CanDeleteItems(u)).To(Equal(authz.CanEditItems(u)))
			Expect(authz.CanBatchOperateItems(u)).To(Equal(authz.CanEditItems(u)))
			Expect(authz.CanDeleteOrders(u)).To(Equal(authz.CanEditOrders(u)))
			Expect(authz.CanBatchOperatePPEDeliveries(u)).To(Equal(authz.CanEditPPEDeliveries(u)))
		}
	})

	It("restricts destructive task, cut, airbrushing and observation operations to admin", func() {
		commercial := userWith(authz.PrivilegeCommercial)
		production := userWith(authz.PrivilegeProduction)

		Expect(authz.CanEditTasks(commercial)).To(BeTrue())
		Expect(authz.CanDeleteTasks(commercial)).To(BeFalse())
		Expect(authz.CanBatchOperateTasks(commercial)).To(BeFalse())

		Expect(authz.CanEditCuts(production)).To(BeTrue())
		Expect(authz.CanDeleteCuts(production)).To(BeFalse())

		Expect(authz.CanEditAirbrushings(commercial)).To(BeTrue())
		Expect(authz.CanDeleteAirbrushings(commercial)).To(BeFalse())

		Expect(authz.CanEditObservations(commercial)).To(BeTrue())
		Expect(authz.CanDeleteObservations(commercial)).To(BeFalse())
	})

	It("lets production into paint productions and garages", func() {
		production := userWith(authz.PrivilegeProduction)
		Expect(authz.CanManagePaintProductions(production)).To(BeTrue())
		Expect(authz.CanEditGarages(production)).To(BeTrue())
		Expect(authz.CanEditPaints(production)).To(BeFalse())
	})

	It("scopes HR entities and users to HR and admin", func() {
		hr := userWith(authz.PrivilegeHumanResources)
		Expect(authz.CanEditHumanResources(hr)).To(BeTrue())
		Expect(authz.CanEditUsers(hr)).To(BeTrue())
		Expect(authz.CanEditUsers(userWith(authz.PrivilegeWarehouse))).To(BeFalse())
	})

	It("lets team leaders maintain customers", func() {
		leader := leaderOf(5)
		Expect(authz.CanEditCustomers(leader)).To(BeTrue())
		Expect(authz.CanCreateCustomers(leader)).To(BeTrue())

		Expect(authz.CanEditCustomers(userWith(authz.PrivilegeFinancial))).To(BeTrue())
		Expect(authz.CanEditCustomers(userWith(authz.PrivilegeCommercial))).To(BeTrue())
		Expect(authz.CanEditCustomers(userWith(authz.PrivilegeBasic))).To(BeFalse())
	})

	It("aliases customer delete to edit, team leaders included", func() {
		for _, u := range []*authz.User{
			leaderOf(5),
			userWith(authz.PrivilegeFinancial),
			userWith(authz.PrivilegeCommercial),
			userWith(authz.PrivilegeBasic),
			nil,
		} {
			Expect(authz.CanDeleteCustomers(u)).To(Equal(authz.CanEditCustomers(u)))
		}
		Expect(authz.CanDeleteCustomers(leaderOf(5))).To(BeTrue())
	})

	It("scopes the paint catalog to warehouse and admin with delete aliasing edit", func() {
		warehouse := userWith(authz.PrivilegeWarehouse)
		basic := userWith(authz.PrivilegeBasic)

		Expect(authz.CanCreatePaintBrands(warehouse)).To(BeTrue())
		Expect(authz.CanCreatePaintTypes(warehouse)).To(BeTrue())
		Expect(authz.CanCreatePaintFormulas(warehouse)).To(BeTrue())
		Expect(authz.CanCreatePaintBrands(basic)).To(BeFalse())
		Expect(authz.CanCreatePaintFormulas(basic)).To(BeFalse())

		for _, u := range []*authz.User{warehouse, basic, userWith(authz.PrivilegeAdmin), nil} {
			Expect(authz.CanDeletePaintBrands(u)).To(Equal(authz.CanEditPaintBrands(u)))
			Expect(authz.CanDeletePaintTypes(u)).To(Equal(authz.CanEditPaintTypes(u)))
			Expect(authz.CanDeletePaintFormulas(u)).To(Equal(authz.CanEditPaintFormulas(u)))
		}
	})
})

var _ = Describe("Instance-scoped leader checks", func() {
	var leader *authz.User

	BeforeEach(func() {
		leader = leaderOf(7)
	})

	Describe("CanLeaderManageTask", func() {
		It("allows tasks in the managed sector", func() {
			Expect(authz.CanLeaderManageTask(leader, sectorID(7))).To(BeTrue())
		})

		It("allows unclaimed tasks", func() {
			Expect(authz.CanLeaderManageTask(leader, nil)).To(BeTrue())
		})

		It("rejects tasks from other sectors", func() {
			Expect(authz.CanLeaderManageTask(leader, sectorID(8))).To(BeFalse())
		})

		It("rejects the leader's own sector when it is not the managed one", func() {
			Expect(authz.CanLeaderManageTask(leader, sectorID(20))).To(BeFalse())
		})

		It("rejects non-leaders and nil users", func() {
			Expect(authz.CanLeaderManageTask(userWith(authz.PrivilegeProduction), sectorID(7))).To(BeFalse())
			Expect(authz.CanLeaderManageTask(nil, nil)).To(BeFalse())
		})
	})

	Describe("CanLeaderUpdateServiceOrder", func() {
		It("requires a concrete sector", func() {
			Expect(authz.CanLeaderUpdateServiceOrder(leader, nil)).To(BeFalse())
		})

		It("allows only the managed sector", func() {
			Expect(authz.CanLeaderUpdateServiceOrder(leader, sectorID(7))).To(BeTrue())
			Expect(authz.CanLeaderUpdateServiceOrder(leader, sectorID(8))).To(BeFalse())
		})
	})

	Describe("CanRequestCutForTask", func() {
		It("allows production and admin regardless of sector", func() {
			Expect(authz.CanRequestCutForTask(userWith(authz.PrivilegeProduction), nil)).To(BeTrue())
			Expect(authz.CanRequestCutForTask(userWith(authz.PrivilegeAdmin), sectorID(99))).To(BeTrue())
		})

		It("requires a concrete managed sector for leaders", func() {
			Expect(authz.CanRequestCutForTask(leader, sectorID(7))).To(BeTrue())
			Expect(authz.CanRequestCutForTask(leader, nil)).To(BeFalse())
			Expect(authz.CanRequestCutForTask(leader, sectorID(8))).To(BeFalse())
		})
	})

	Describe("CanEditLayoutForTask", func() {
		It("allows admin everywhere", func() {
			Expect(authz.CanEditLayoutForTask(userWith(authz.PrivilegeAdmin), nil)).To(BeTrue())
		})

		It("follows the claim rule for leaders", func() {
			Expect(authz.CanEditLayoutForTask(leader, nil)).To(BeTrue())
			Expect(authz.CanEditLayoutForTask(leader, sectorID(7))).To(BeTrue())
			Expect(authz.CanEditLayoutForTask(leader, sectorID(8))).To(BeFalse())
		})

		It("rejects plain privileges", func() {
			Expect(authz.CanEditLayoutForTask(userWith(authz.PrivilegeDesigner), sectorID(7))).To(BeFalse())
		})
	})
})
