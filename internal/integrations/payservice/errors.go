package payservice

import "errors"

var (
	// ErrPaymentDeclined возвращается, когда платёжный сервис отклонил оплату
	ErrPaymentDeclined = errors.New("payservice client: payment declined")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("payservice client: invalid response")
)
