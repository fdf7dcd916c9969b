package dto

// StockValidationResult is the accept/reject decision for a cart write.
type StockValidationResult struct {
	IsValid             bool   `json:"isValid"`
	AvailableStock      int    `json:"availableStock"`
	RequestedQuantity   int    `json:"requestedQuantity"`
	CurrentCartQuantity int    `json:"currentCartQuantity"`
	Message             string `json:"message"`
}

type StockInfo struct {
	ProductID      string `json:"productId"`
	ProductName    string `json:"productName"`
	AvailableStock int    `json:"availableStock"`
	HasStock       bool   `json:"hasStock"`
}
