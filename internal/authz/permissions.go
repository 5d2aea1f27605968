package authz

// Per-entity permission matrix. Each check is a membership test of the user's
// sector privilege against a fixed allow-list; a nil user always fails. ADMIN
// appears in every allow-list, so administrators pass every check without a
// separate short-circuit.

// Tasks. Creation and editing belong to administration and the commercial
// team; destructive and bulk operations stay with administrators. Team
// leaders act on individual tasks through CanLeaderManageTask instead.

func CanCreateTasks(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeCommercial)
}

func CanEditTasks(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeCommercial)
}

func CanDeleteTasks(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin)
}

func CanBatchOperateTasks(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin)
}

// Cuts.

func CanCreateCuts(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeProduction)
}

func CanEditCuts(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeProduction)
}

func CanDeleteCuts(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin)
}

// Airbrushings.

func CanCreateAirbrushings(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeCommercial)
}

func CanEditAirbrushings(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeCommercial)
}

func CanDeleteAirbrushings(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin)
}

// Observations.

func CanCreateObservations(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeCommercial)
}

func CanEditObservations(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeCommercial)
}

func CanDeleteObservations(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin)
}

// Inventory items.

func CanCreateItems(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanEditItems(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanDeleteItems(u *User) bool {
	return CanEditItems(u)
}

func CanBatchOperateItems(u *User) bool {
	return CanEditItems(u)
}

// Orders.

func CanCreateOrders(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanEditOrders(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanDeleteOrders(u *User) bool {
	return CanEditOrders(u)
}

func CanBatchOperateOrders(u *User) bool {
	return CanEditOrders(u)
}

// Borrows.

func CanCreateBorrows(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanEditBorrows(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanDeleteBorrows(u *User) bool {
	return CanEditBorrows(u)
}

// PPE deliveries.

func CanCreatePPEDeliveries(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanEditPPEDeliveries(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanDeletePPEDeliveries(u *User) bool {
	return CanEditPPEDeliveries(u)
}

func CanBatchOperatePPEDeliveries(u *User) bool {
	return CanEditPPEDeliveries(u)
}

// Maintenance records.

func CanCreateMaintenance(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanEditMaintenance(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanDeleteMaintenance(u *User) bool {
	return CanEditMaintenance(u)
}

// External withdrawals.

func CanCreateExternalWithdrawals(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanEditExternalWithdrawals(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanDeleteExternalWithdrawals(u *User) bool {
	return CanEditExternalWithdrawals(u)
}

// Suppliers.

func CanCreateSuppliers(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanEditSuppliers(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanDeleteSuppliers(u *User) bool {
	return CanEditSuppliers(u)
}

// Paints and the paint catalog.

func CanCreatePaints(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanEditPaints(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanDeletePaints(u *User) bool {
	return CanEditPaints(u)
}

func CanCreatePaintBrands(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanEditPaintBrands(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanDeletePaintBrands(u *User) bool {
	return CanEditPaintBrands(u)
}

func CanCreatePaintTypes(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanEditPaintTypes(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanDeletePaintTypes(u *User) bool {
	return CanEditPaintTypes(u)
}

func CanCreatePaintFormulas(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanEditPaintFormulas(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse)
}

func CanDeletePaintFormulas(u *User) bool {
	return CanEditPaintFormulas(u)
}

// CanManagePaintProductions covers running formulas on the shop floor, so
// production joins the warehouse here.
func CanManagePaintProductions(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse, PrivilegeProduction)
}

// Garages. Production parks and moves trucks, so it shares the permission.

func CanCreateGarages(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse, PrivilegeProduction)
}

func CanEditGarages(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeWarehouse, PrivilegeProduction)
}

func CanDeleteGarages(u *User) bool {
	return CanEditGarages(u)
}

// Customers. Team leaders may also maintain customer records for the work
// arriving in their sector.

func CanCreateCustomers(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeFinancial, PrivilegeCommercial) || IsTeamLeader(u)
}

func CanEditCustomers(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeFinancial, PrivilegeCommercial) || IsTeamLeader(u)
}

func CanDeleteCustomers(u *User) bool {
	return CanEditCustomers(u)
}

// HR entities (positions, holidays, warnings, vacations).

func CanCreateHumanResources(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeHumanResources)
}

func CanEditHumanResources(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeHumanResources)
}

func CanDeleteHumanResources(u *User) bool {
	return CanEditHumanResources(u)
}

// Users.

func CanCreateUsers(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeHumanResources)
}

func CanEditUsers(u *User) bool {
	return HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeHumanResources)
}

func CanDeleteUsers(u *User) bool {
	return CanEditUsers(u)
}

func CanBatchOperateUsers(u *User) bool {
	return CanEditUsers(u)
}

// Instance-scoped checks. A team leader's authority over an instance is
// limited to instances whose sector is the one they manage, never the sector
// they merely belong to. Whether a nil sector is in scope differs per
// operation and the asymmetry is deliberate: an unassigned task can be
// claimed into the leader's sector by starting it, but a service order or a
// cut request on an unassigned task has no sector to authorize against.

func managesSector(u *User, sectorID *int64) bool {
	if !IsTeamLeader(u) || sectorID == nil {
		return false
	}
	return *sectorID == u.ManagedSector.ID
}

// CanLeaderManageTask reports whether a team leader may start or finish the
// task with the given sector. A nil sector means the task is unclaimed and
// any leader may take it.
func CanLeaderManageTask(u *User, taskSectorID *int64) bool {
	if !IsTeamLeader(u) {
		return false
	}
	if taskSectorID == nil {
		return true
	}
	return *taskSectorID == u.ManagedSector.ID
}

// CanLeaderUpdateServiceOrder reports whether a team leader may update
// service orders on the task with the given sector. Unclaimed tasks are out
// of scope.
func CanLeaderUpdateServiceOrder(u *User, taskSectorID *int64) bool {
	return managesSector(u, taskSectorID)
}

// CanRequestCutForTask reports whether the user may request a cut for the
// task with the given sector. Production and administrators may always do so;
// leaders only within their managed sector, and never for unclaimed tasks.
func CanRequestCutForTask(u *User, taskSectorID *int64) bool {
	if HasAnyPrivilege(u, PrivilegeAdmin, PrivilegeProduction) {
		return true
	}
	return managesSector(u, taskSectorID)
}

// CanEditLayoutForTask reports whether the user may edit the truck layout of
// the task with the given sector. Administrators always may; leaders follow
// the same claim rule as CanLeaderManageTask.
func CanEditLayoutForTask(u *User, taskSectorID *int64) bool {
	if HasAnyPrivilege(u, PrivilegeAdmin) {
		return true
	}
	return CanLeaderManageTask(u, taskSectorID)
}
