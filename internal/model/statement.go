package model

import "github.com/google/uuid"

type UtilityLine struct {
	UtilityLeaseID uuid.UUID
	UtilityName    string
	Rate           float64
}

// RentStatement is a rent with everything needed to print or export it.
type RentStatement struct {
	Rent      Rent
	Lease     Lease
	Property  ResolvedProperty
	Customer  Customer
	Owner     Owner
	Utilities []UtilityLine
}

func (s RentStatement) UtilitiesTotal() float64 {
	total := 0.0
	for _, line := range s.Utilities {
		total += line.Rate
	}
	return total
}
