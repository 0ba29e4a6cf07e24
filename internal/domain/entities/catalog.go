package entities

// Read-side projections of platform resources the costing engine consumes.
// These tables are owned by the event/menu CRUD services; the engine never
// writes them.

// MenuPackage carries the two per-person figures the calculator needs. A zero
// value (empty ID) means the reference did not resolve, which is a valid
// "no package" state rather than an error.
type MenuPackage struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	PricePerPerson float64 `json:"price_per_person"`
	CostPerPerson  float64 `json:"cost_per_person"`
}

// EquipmentItem is a rentable unit referenced by id from an estimate request.
type EquipmentItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderRef is the slice of an event's order the engine cares about: which
// menu package it sells.
type OrderRef struct {
	PackageID string `json:"package_id"`
}

// InvoiceRef is the billing slice used by margin analysis.
type InvoiceRef struct {
	Status string  `json:"status"`
	Total  float64 `json:"total"`
}

const InvoiceStatusPaid = "PAID"

// Event is the denormalized event projection used by quick estimates and
// margin analysis. Orders and invoices are embedded on the event item the
// same way the platform writes them.
type Event struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	ClientID   string       `json:"client_id"`
	GuestCount int          `json:"guest_count"`
	Orders     []OrderRef   `json:"orders"`
	Invoices   []InvoiceRef `json:"invoices"`
}
