package request

// Checkout is the shipping form submitted with the order.
type Checkout struct {
	CustomerName string `validate:"required" json:"customer_name"`
	Phone        string `validate:"required" json:"phone"`
	Address      string `validate:"required" json:"address"`
}

type UpdateOrderStatus struct {
	Status string `validate:"required,oneof=pending paid cancelled" json:"status"`
}
