package httpx

type PlaceOrderRequest struct {
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	Verification string  `json:"verification"` // honeypot
	Shipping     string  `json:"shipping"`
	Order        CartDTO `json:"order"`
	CFToken      string  `json:"cf_token"`
}

type CartDTO struct {
	Items      map[string]CartItemDTO `json:"items"`
	TotalQty   int                    `json:"totalQty"`
	TotalPrice float64                `json:"totalPrice"`
}

type CartItemDTO struct {
	Qty          int     `json:"qty"`
	Price        float64 `json:"price"`
	PricePerUnit float64 `json:"pricePerUnit"`
	ImageURL     string  `json:"imageUrl"`
}

type PlaceOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
