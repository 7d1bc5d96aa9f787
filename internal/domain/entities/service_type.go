package entities

// ServiceType classifies a scheduled cleaning service.
//
// Domain notes:
//   - Departure Clean / Prearrival Service bill the unit's base price and pay
//     the worker through rates (cross, unit or hourly).
//   - Touch Up / Landscaping / Terceros bill and pay through surcharges and
//     extras only; the unit price never enters their totals.

type ServiceType string

const (
	ServiceTypeDepartureClean    ServiceType = "Departure Clean"
	ServiceTypePrearrivalService ServiceType = "Prearrival Service"
	ServiceTypeTouchUp           ServiceType = "Touch Up"
	ServiceTypeLandscaping       ServiceType = "Landscaping"
	ServiceTypeTerceros          ServiceType = "Terceros"
)

// AllServiceTypes lists the valid service types in display order.
var AllServiceTypes = []ServiceType{
	ServiceTypeDepartureClean,
	ServiceTypePrearrivalService,
	ServiceTypeTouchUp,
	ServiceTypeLandscaping,
	ServiceTypeTerceros,
}

func (t ServiceType) IsValid() bool {
	for _, v := range AllServiceTypes {
		if t == v {
			return true
		}
	}
	return false
}

// IsExtrasOnly reports whether the type bills the client and pays the worker
// through surcharges/extras only.
func (t ServiceType) IsExtrasOnly() bool {
	return t == ServiceTypeTouchUp || t == ServiceTypeLandscaping || t == ServiceTypeTerceros
}

// WorkOrderPrefix returns the correlative prefix for the type, or "" for
// types that carry no work order (Departure Clean, Prearrival Service).
func (t ServiceType) WorkOrderPrefix() string {
	switch t {
	case ServiceTypeTouchUp:
		return "T"
	case ServiceTypeLandscaping:
		return "L"
	case ServiceTypeTerceros:
		return "C"
	default:
		return ""
	}
}
