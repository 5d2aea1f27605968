package authz

// EntityKind tags the entity types the UI renders in lists and tables. The
// set is closed; the dispatcher switches over every value and treats anything
// else as not interactive.
type EntityKind string

const (
	EntityTask               EntityKind = "task"
	EntityCut                EntityKind = "cut"
	EntityItem               EntityKind = "item"
	EntityPaint              EntityKind = "paint"
	EntityCustomer           EntityKind = "customer"
	EntityOrder              EntityKind = "order"
	EntityBorrow             EntityKind = "borrow"
	EntityPPE                EntityKind = "ppe"
	EntityMaintenance        EntityKind = "maintenance"
	EntityExternalWithdrawal EntityKind = "externalWithdrawal"
	EntitySupplier           EntityKind = "supplier"
	EntityHR                 EntityKind = "hr"
	EntityUser               EntityKind = "user"
	EntityPaintBrand         EntityKind = "paintBrand"
	EntityPaintType          EntityKind = "paintType"
	EntityPaintFormula       EntityKind = "paintFormula"
	EntityGarage             EntityKind = "garage"
	EntityAirbrushing        EntityKind = "airbrushing"
	EntityObservation        EntityKind = "observation"
)

// AllEntityKinds lists every dispatchable entity kind.
var AllEntityKinds = []EntityKind{
	EntityTask,
	EntityCut,
	EntityItem,
	EntityPaint,
	EntityCustomer,
	EntityOrder,
	EntityBorrow,
	EntityPPE,
	EntityMaintenance,
	EntityExternalWithdrawal,
	EntitySupplier,
	EntityHR,
	EntityUser,
	EntityPaintBrand,
	EntityPaintType,
	EntityPaintFormula,
	EntityGarage,
	EntityAirbrushing,
	EntityObservation,
}
