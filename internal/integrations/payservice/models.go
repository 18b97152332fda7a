package payservice

// ChargeRequest запрос на списание оплаты бронирования
type ChargeRequest struct {
	UserID     int64  `json:"user_id"`
	BusinessID int64  `json:"business_id"`
	ServiceID  int64  `json:"service_id"`
	Reference  string `json:"reference"`
}

// ChargeResult результат оплаты от платёжного сервиса
type ChargeResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}
