package request_models

type VerifyPaymentRequest struct {
	OrderCode int64 `json:"order_code" binding:"required"`
}
