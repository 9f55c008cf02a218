package model

// Shipment represents one logistics order/delivery record.
type Shipment struct {
	ID                string  `yaml:"id"`
	ClientID          string  `yaml:"client_id"`
	ClientName        string  `yaml:"client_name"`
	Segment           string  `yaml:"segment"`
	Business          string  `yaml:"business"`
	State             string  `yaml:"state"`
	City              string  `yaml:"city"`
	OrderNumber       string  `yaml:"order_number"`
	Type              string  `yaml:"type"`
	Status            string  `yaml:"status"`
	InvoiceNumber     *string `yaml:"invoice_number"`
	StatusDescription string  `yaml:"status_description"`
	SuspensionCode    string  `yaml:"suspension_code"`
	Description       string  `yaml:"description"`
	Freight           float64 `yaml:"freight"`
	Discount          float64 `yaml:"discount"`
	GrossPrice        float64 `yaml:"gross_price"`
	NetWeight         float64 `yaml:"net_weight"`
}

// Invoice returns the invoice number and whether the shipment has one.
func (s Shipment) Invoice() (string, bool) {
	if s.InvoiceNumber == nil {
		return "", false
	}
	return *s.InvoiceNumber, true
}

// StatusCount is one status card: how many orders sit in a given status.
type StatusCount struct {
	Status string `yaml:"status"`
	Count  int    `yaml:"count"`
	Icon   string `yaml:"icon"`
	Label  string `yaml:"label"`
}

// Summary holds the dashboard aggregates shown above the status cards.
type Summary struct {
	ActiveOrders    int
	TodayDeliveries int
	TotalValue      float64
	TotalWeight     float64
}
