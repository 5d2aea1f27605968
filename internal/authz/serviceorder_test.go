package authz_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ankaahq/ankaa-access/internal/authz"
)

var _ = Describe("Service-order visibility", func() {
	It("shows everything to administrators", func() {
		Expect(authz.VisibleServiceOrderTypes(userWith(authz.PrivilegeAdmin))).
			To(ConsistOf(authz.AllServiceOrderTypes))
	})

	It("shows each office its own type plus production", func() {
		Expect(authz.VisibleServiceOrderTypes(userWith(authz.PrivilegeFinancial))).
			To(ConsistOf(authz.ServiceOrderFinancial, authz.ServiceOrderProduction))
		Expect(authz.VisibleServiceOrderTypes(userWith(authz.PrivilegeCommercial))).
			To(ConsistOf(authz.ServiceOrderCommercial, authz.ServiceOrderArtwork, authz.ServiceOrderProduction))
		Expect(authz.VisibleServiceOrderTypes(userWith(authz.PrivilegeDesigner))).
			To(ConsistOf(authz.ServiceOrderArtwork, authz.ServiceOrderProduction))
		Expect(authz.VisibleServiceOrderTypes(userWith(authz.PrivilegeLogistic))).
			To(ConsistOf(authz.ServiceOrderLogistic, authz.ServiceOrderProduction))
	})

	It("shows only production to unlisted privileges and nil users", func() {
		for _, p := range []authz.Privilege{
			authz.PrivilegeProduction,
			authz.PrivilegeWarehouse,
			authz.PrivilegeHumanResources,
			authz.PrivilegeMaintenance,
			authz.PrivilegeBasic,
			authz.PrivilegeExternal,
			authz.PrivilegePlotting,
		} {
			Expect(authz.VisibleServiceOrderTypes(userWith(p))).
				To(ConsistOf(authz.ServiceOrderProduction), "privilege %s", p)
		}
		Expect(authz.VisibleServiceOrderTypes(nil)).To(ConsistOf(authz.ServiceOrderProduction))
	})

	It("keeps CanViewServiceOrderType consistent with the visible set", func() {
		for _, p := range authz.AllPrivileges {
			u := userWith(p)
			visible := authz.VisibleServiceOrderTypes(u)
			for _, t := range authz.AllServiceOrderTypes {
				inSet := false
				for _, v := range visible {
					if v == t {
						inSet = true
					}
				}
				Expect(authz.CanViewServiceOrderType(u, t)).To(Equal(inSet), "privilege %s type %s", p, t)
			}
		}
	})
})

var _ = Describe("Service-order editing", func() {
	It("maps each type to exactly one responsible privilege", func() {
		cases := map[authz.ServiceOrderType]authz.Privilege{
			authz.ServiceOrderProduction: authz.PrivilegeProduction,
			authz.ServiceOrderFinancial:  authz.PrivilegeFinancial,
			authz.ServiceOrderCommercial: authz.PrivilegeCommercial,
			authz.ServiceOrderLogistic:   authz.PrivilegeLogistic,
			authz.ServiceOrderArtwork:    authz.PrivilegeDesigner,
		}

		for t, responsible := range cases {
			for _, p := range authz.AllPrivileges {
				want := p == responsible || p == authz.PrivilegeAdmin
				Expect(authz.CanEditServiceOrderOfType(userWith(p), t)).
					To(Equal(want), "privilege %s type %s", p, t)
			}
		}
	})

	It("lets team leaders edit production orders only", func() {
		leader := leaderOf(3)
		Expect(authz.CanEditServiceOrderOfType(leader, authz.ServiceOrderProduction)).To(BeTrue())
		Expect(authz.CanEditServiceOrderOfType(leader, authz.ServiceOrderFinancial)).To(BeFalse())
		Expect(authz.CanEditServiceOrderOfType(leader, authz.ServiceOrderArtwork)).To(BeFalse())
	})

	It("fails closed on nil users", func() {
		for _, t := range authz.AllServiceOrderTypes {
			Expect(authz.CanEditServiceOrderOfType(nil, t)).To(BeFalse())
		}
	})
})

var _ = Describe("Detailed service-order view", func() {
	It("is granted to the office privileges and team leaders", func() {
		for _, p := range []authz.Privilege{
			authz.PrivilegeAdmin,
			authz.PrivilegeCommercial,
			authz.PrivilegeDesigner,
			authz.PrivilegeFinancial,
			authz.PrivilegeLogistic,
		} {
			Expect(authz.HasDetailedServiceOrderView(userWith(p))).To(BeTrue(), "privilege %s", p)
		}
		Expect(authz.HasDetailedServiceOrderView(leaderOf(1))).To(BeTrue())
	})

	It("is denied everywhere else", func() {
		Expect(authz.HasDetailedServiceOrderView(userWith(authz.PrivilegeProduction))).To(BeFalse())
		Expect(authz.HasDetailedServiceOrderView(userWith(authz.PrivilegeWarehouse))).To(BeFalse())
		Expect(authz.HasDetailedServiceOrderView(nil)).To(BeFalse())
	})
})

var _ = Describe("Allowed status transitions", func() {
	It("is empty without edit permission on the type", func() {
		Expect(authz.AllowedServiceOrderStatuses(userWith(authz.PrivilegeFinancial), authz.ServiceOrderArtwork, authz.StatusPending)).
			To(BeEmpty())
		Expect(authz.AllowedServiceOrderStatuses(nil, authz.ServiceOrderProduction, authz.StatusPending)).
			To(BeEmpty())
	})

	It("never offers the approval step outside artwork", func() {
		financial := userWith(authz.PrivilegeFinancial)
		for _, s := range authz.AllServiceOrderStatuses {
			Expect(authz.AllowedServiceOrderStatuses(financial, authz.ServiceOrderFinancial, s)).
				NotTo(ContainElement(authz.StatusWaitingApprove))
		}
	})

	It("lets designers submit artwork for approval but never complete it", func() {
		designer := userWith(authz.PrivilegeDesigner)
		for _, s := range authz.AllServiceOrderStatuses {
			allowed := authz.AllowedServiceOrderStatuses(designer, authz.ServiceOrderArtwork, s)
			Expect(allowed).To(ContainElement(authz.StatusWaitingApprove))
			Expect(allowed).NotTo(ContainElement(authz.StatusCompleted))
			Expect(allowed).NotTo(ContainElement(authz.StatusCancelled))
		}
	})

	It("reserves cancellation for administrators", func() {
		admin := userWith(authz.PrivilegeAdmin)
		for _, t := range authz.AllServiceOrderTypes {
			Expect(authz.AllowedServiceOrderStatuses(admin, t, authz.StatusPending)).
				To(ContainElement(authz.StatusCancelled))
		}
		Expect(authz.AllowedServiceOrderStatuses(userWith(authz.PrivilegeLogistic), authz.ServiceOrderLogistic, authz.StatusPending)).
			NotTo(ContainElement(authz.StatusCancelled))
	})

	It("gives admins the full artwork set including completion", func() {
		allowed := authz.AllowedServiceOrderStatuses(userWith(authz.PrivilegeAdmin), authz.ServiceOrderArtwork, authz.StatusWaitingApprove)
		Expect(allowed).To(ConsistOf(
			authz.StatusPending,
			authz.StatusInProgress,
			authz.StatusWaitingApprove,
			authz.StatusCompleted,
			authz.StatusCancelled,
		))
	})

	It("ignores the current status", func() {
		u := userWith(authz.PrivilegeProduction)
		base := authz.AllowedServiceOrderStatuses(u, authz.ServiceOrderProduction, authz.StatusPending)
		for _, s := range authz.AllServiceOrderStatuses {
			Expect(authz.AllowedServiceOrderStatuses(u, authz.ServiceOrderProduction, s)).To(Equal(base))
		}
	})
})

var _ = Describe("Cancel and artwork completion gates", func() {
	It("are admin only", func() {
		Expect(authz.CanCancelServiceOrder(userWith(authz.PrivilegeAdmin))).To(BeTrue())
		Expect(authz.CanCompleteArtworkServiceOrder(userWith(authz.PrivilegeAdmin))).To(BeTrue())

		for _, p := range authz.AllPrivileges {
			if p == authz.PrivilegeAdmin {
				continue
			}
			Expect(authz.CanCancelServiceOrder(userWith(p))).To(BeFalse(), "privilege %s", p)
			Expect(authz.CanCompleteArtworkServiceOrder(userWith(p))).To(BeFalse(), "privilege %s", p)
		}
		Expect(authz.CanCancelServiceOrder(leaderOf(1))).To(BeFalse())
	})
})
