package authz

// ShouldShowInteractiveElements decides whether list and table rows of the
// given entity kind render edit affordances (checkboxes, swipe actions, bulk
// bars) for the user. It forwards to the edit check of the matching entity;
// kinds outside the closed set are never interactive.
func ShouldShowInteractiveElements(u *User, kind EntityKind) bool {
	switch kind {
	case EntityTask:
		return CanEditTasks(u)
	case EntityCut:
		return CanEditCuts(u)
	case EntityItem:
		return CanEditItems(u)
	case EntityPaint:
		return CanEditPaints(u)
	case EntityCustomer:
		return CanEditCustomers(u)
	case EntityOrder:
		return CanEditOrders(u)
	case EntityBorrow:
		return CanEditBorrows(u)
	case EntityPPE:
		return CanEditPPEDeliveries(u)
	case EntityMaintenance:
		return CanEditMaintenance(u)
	case EntityExternalWithdrawal:
		return CanEditExternalWithdrawals(u)
	case EntitySupplier:
		return CanEditSuppliers(u)
	case EntityHR:
		return CanEditHumanResources(u)
	case EntityUser:
		return CanEditUsers(u)
	case EntityPaintBrand:
		return CanEditPaintBrands(u)
	case EntityPaintType:
		return CanEditPaintTypes(u)
	case EntityPaintFormula:
		return CanEditPaintFormulas(u)
	case EntityGarage:
		return CanEditGarages(u)
	case EntityAirbrushing:
		return CanEditAirbrushings(u)
	case EntityObservation:
		return CanEditObservations(u)
	default:
		return false
	}
}
