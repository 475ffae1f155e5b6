package domain

type DashboardSummary struct {
	TotalProducts    int64     `json:"total_products"`
	TotalCategories  int64     `json:"total_categories"`
	TotalSuppliers   int64     `json:"total_suppliers"`
	LowStockProducts []Product `json:"low_stock_products"`
}
