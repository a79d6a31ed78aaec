package match_pricing_rule

import (
	"fmt"

	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	"github.com/m04kA/SMC-ParkingAdminService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !domain.ValidSlotType(req.SlotType) {
		return fmt.Errorf("%w: unknown slot type %q", ErrInvalidInput, req.SlotType)
	}
	if !domain.ValidWeekday(req.Day) {
		return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, req.Day)
	}
	if _, err := types.NewTimeStringFromString(string(req.Time)); err != nil {
		return fmt.Errorf("%w: invalid time %q", ErrInvalidInput, req.Time)
	}
	return nil
}
