package response_models

type CreateCheckoutResponse struct {
	OrderCode    int64  `json:"order_code"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	PaymentURL   string `json:"payment_url"`
	ProviderName string `json:"provider_name"`
}

type VerifyPaymentResponse struct {
	Status    string `json:"status"`
	Activated bool   `json:"activated"`
}
