package domain

// SlotType represents the physical kind of a parking slot
type SlotType string

const (
	SlotTypeStandard    SlotType = "standard"
	SlotTypeCompact     SlotType = "compact"
	SlotTypeHandicapped SlotType = "handicapped"
	SlotTypeElectric    SlotType = "electric"

	// SlotTypeAll is a pricing-rule sentinel matching every slot type.
	// Never stored on a ParkingSlot itself.
	SlotTypeAll SlotType = "all"
)

// ParkingSlot represents a single physical parking space
type ParkingSlot struct {
	ID         string
	Name       string
	Section    string
	Type       SlotType
	IsOccupied bool
	IsActive   bool
}

// CanBeDeleted returns true if the slot may be removed from the facility
// Занятое место удалять нельзя - сначала должно освободиться
func (s *ParkingSlot) CanBeDeleted() bool {
	return !s.IsOccupied
}

// ValidSlotType returns true for a concrete slot type (the "all" sentinel excluded)
func ValidSlotType(t SlotType) bool {
	switch t {
	case SlotTypeStandard, SlotTypeCompact, SlotTypeHandicapped, SlotTypeElectric:
		return true
	}
	return false
}

// SlotFilter фильтр для получения списка парковочных мест
type SlotFilter struct {
	Section    *string   // Фильтр по секции (опционально)
	Type       *SlotType // Фильтр по типу места (опционально)
	ActiveOnly bool      // Только активные места
}
