package usecase

// SettledMsg is published to RabbitMQ after an order is charged; the kitchen
// consumer turns it into a fulfilment ticket.
type SettledMsg struct {
	OrderID   string        `json:"orderId"`
	Username  string        `json:"username"`
	Total     string        `json:"total"`
	CreatedAt string        `json:"createdAt"`
	Lines     []SettledLine `json:"lines"`
}

type SettledLine struct {
	FoodID   string `json:"foodId"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
}

// PriceChangedMsg arrives on the Kafka catalog feed when a dish is repriced.
type PriceChangedMsg struct {
	FoodID string `json:"foodId"`
	Price  string `json:"price"`
}
