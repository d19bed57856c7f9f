package model

import (
	"time"

	"github.com/google/uuid"
)

type Lease struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RentalRate float64   `gorm:"not null" json:"rental_rate"`
	StartDate  time.Time `gorm:"not null" json:"start_date"`
	EndDate    time.Time `gorm:"not null" json:"end_date"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_lease_property_customer" json:"property_id"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_lease_property_customer" json:"customer_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Rent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Total     float64   `gorm:"not null" json:"total"`
	LeaseID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"lease_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RentUtilityLease links a rent to one of the utility leases billed with it.
type RentUtilityLease struct {
	RentID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UtilityLeaseID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

type Utility struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UtilityLease struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RentalRate float64   `gorm:"not null" json:"rental_rate"`
	UtilityID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_utility_lease_utility_property" json:"utility_id"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_utility_lease_utility_property" json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
