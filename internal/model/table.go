package model

// TableStatus is the occupancy state of a table.
type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusOccupied  TableStatus = "occupied"
	TableStatusReserved  TableStatus = "reserved"
)

// Table is a physical table in a restaurant.
type Table struct {
	Owned
	Num    int         `json:"num" gorm:"not null"`
	Status TableStatus `json:"status" gorm:"type:varchar(20);not null;default:'available'"`
}
