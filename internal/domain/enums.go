package domain

// CalculationKind tags the activity a calculation was computed for. All kinds
// share one resolve/compute/persist pipeline; a kind only contributes its
// category string and the name of its quantity field.
type CalculationKind string

const (
	KindElectricity CalculationKind = "electricity"
	KindTransport   CalculationKind = "transport"
)

func (k CalculationKind) String() string { return string(k) }

func (k CalculationKind) IsValid() bool {
	switch k {
	case KindElectricity, KindTransport:
		return true
	}
	return false
}

// Category is the catalog category factors are looked up under.
func (k CalculationKind) Category() string { return string(k) }

// QuantityField is the input snapshot key holding the activity quantity.
func (k CalculationKind) QuantityField() string {
	switch k {
	case KindElectricity:
		return "kwh"
	case KindTransport:
		return "km"
	}
	return "quantity"
}

// QuantityUnit is the unit the quantity is expressed in.
func (k CalculationKind) QuantityUnit() string {
	switch k {
	case KindElectricity:
		return "kWh"
	case KindTransport:
		return "km"
	}
	return ""
}
