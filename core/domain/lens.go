// ABOUTME: Lens enumeration conditioning how descriptions are phrased
// ABOUTME: Unknown lens values are rejected before any generation call

package domain

import (
	"fmt"
	"strings"
)

// Lens is a fixed perspective that selects the synthesis template.
type Lens string

const (
	LensService  Lens = "service"
	LensBrand    Lens = "brand"
	LensEvent    Lens = "event"
	LensProduct  Lens = "product"
	LensSolution Lens = "solution"
	LensFunction Lens = "function"
)

// AllLenses lists every supported lens in a stable order.
func AllLenses() []Lens {
	return []Lens{LensService, LensBrand, LensEvent, LensProduct, LensSolution, LensFunction}
}

// ParseLens validates a lens string, case-insensitively.
func ParseLens(s string) (Lens, error) {
	switch Lens(strings.ToLower(strings.TrimSpace(s))) {
	case LensService:
		return LensService, nil
	case LensBrand:
		return LensBrand, nil
	case LensEvent:
		return LensEvent, nil
	case LensProduct:
		return LensProduct, nil
	case LensSolution:
		return LensSolution, nil
	case LensFunction:
		return LensFunction, nil
	}
	return "", fmt.Errorf("unknown lens %q: must be one of service, brand, event, product, solution, function", s)
}

// String returns the wire value of the lens.
func (l Lens) String() string {
	return string(l)
}
