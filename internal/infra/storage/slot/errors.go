package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда парковочное место не найдено
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotOccupied возвращается при попытке удалить занятое место
	ErrSlotOccupied = errors.New("slot.repository: slot is occupied")
)
