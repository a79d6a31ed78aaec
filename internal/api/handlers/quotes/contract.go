package quotes

import (
	"context"

	quoteBooking "github.com/m04kA/SMC-ParkingAdminService/internal/usecase/quote_booking"
)

// QuoteBookingUseCase интерфейс usecase расчета стоимости бронирования
type QuoteBookingUseCase interface {
	Execute(ctx context.Context, req *quoteBooking.Request) (*quoteBooking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
