package model

import (
	"time"

	"github.com/google/uuid"
)

type PropertyKind string

const (
	PropertyKindResidence   PropertyKind = "RESIDENCE"
	PropertyKindEventSpace  PropertyKind = "EVENT_SPACE"
	PropertyKindOfficeSpace PropertyKind = "OFFICE_SPACE"
)

// SupportsUtilities reports whether utility leases may be attached to the kind.
func (k PropertyKind) SupportsUtilities() bool {
	return k == PropertyKindEventSpace || k == PropertyKindOfficeSpace
}

type HeatingType string

const (
	HeatingCentral     HeatingType = "CENTRAL"
	HeatingGas         HeatingType = "GAS"
	HeatingElectricity HeatingType = "ELECTRICITY"
	HeatingWood        HeatingType = "WOOD"
)

var HeatingTypes = []HeatingType{HeatingCentral, HeatingGas, HeatingElectricity, HeatingWood}

func (h HeatingType) Valid() bool {
	for _, candidate := range HeatingTypes {
		if h == candidate {
			return true
		}
	}
	return false
}

// PropertyBase holds the columns shared by every property table.
type PropertyBase struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Address      string    `gorm:"size:255;not null;uniqueIndex" json:"address"`
	Description  string    `gorm:"type:text" json:"description"`
	RentalRate   float64   `gorm:"not null" json:"rental_rate"`
	Size         float64   `gorm:"not null" json:"size"`
	Available    bool      `gorm:"not null" json:"available"`
	ParkingSpots int       `gorm:"not null;default:0" json:"parking_spots"`
	Photos       []string  `gorm:"type:text;serializer:json" json:"photos"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Residence struct {
	PropertyBase
	Bedrooms    int         `gorm:"not null" json:"bedrooms"`
	Bathrooms   int         `gorm:"not null" json:"bathrooms"`
	Heating     HeatingType `gorm:"size:32;not null" json:"heating"`
	PetFriendly bool        `gorm:"not null" json:"pet_friendly"`
	Furnished   bool        `gorm:"not null" json:"furnished"`
}

type EventSpace struct {
	PropertyBase
	Capacity   int  `gorm:"not null" json:"capacity"`
	HasKitchen bool `gorm:"not null" json:"has_kitchen"`
	HasBar     bool `gorm:"not null" json:"has_bar"`
}

type OfficeSpace struct {
	PropertyBase
	Capacity int `gorm:"not null" json:"capacity"`
}

// Property is implemented by the pointer types of the three variants.
type Property interface {
	Kind() PropertyKind
	Base() *PropertyBase
}

func (r *Residence) Kind() PropertyKind { return PropertyKindResidence }

func (r *Residence) Base() *PropertyBase { return &r.PropertyBase }

func (e *EventSpace) Kind() PropertyKind { return PropertyKindEventSpace }

func (e *EventSpace) Base() *PropertyBase { return &e.PropertyBase }

func (o *OfficeSpace) Kind() PropertyKind { return PropertyKindOfficeSpace }

func (o *OfficeSpace) Base() *PropertyBase { return &o.PropertyBase }

// PropertyRef identifies a property together with the table it lives in.
type PropertyRef struct {
	Kind PropertyKind `json:"kind"`
	ID   uuid.UUID    `json:"id"`
}

// ResolvedProperty is the catalog's answer for an id: the variant tag plus the shared columns.
type ResolvedProperty struct {
	Kind PropertyKind `json:"kind"`
	PropertyBase
}

func (p ResolvedProperty) Ref() PropertyRef {
	return PropertyRef{Kind: p.Kind, ID: p.ID}
}

func Resolve(p Property) ResolvedProperty {
	return ResolvedProperty{Kind: p.Kind(), PropertyBase: *p.Base()}
}
