package http

import "github.com/samber/lo"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the identifier of a created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}

type NewSupplier struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type NewCustomer struct {
	CompanyName string `json:"companyName"`
	PersonName  string `json:"personName"`
	Email       string `json:"email"`
}

// NewItem carries the price as a decimal string, e.g. "12.50".
type NewItem struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Price      string `json:"price"`
	Stock      int    `json:"stock"`
	SupplierID string `json:"supplierId"`
}

// ItemChanges carries the editable item fields; stock changes go through
// RestockRequest.
type ItemChanges struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
}

type RestockRequest struct {
	Quantity int `json:"quantity"`
}

type StockResponse struct {
	Stock int `json:"stock"`
}

type OrderLine struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type NewOrder struct {
	CustomerID string      `json:"customerId"`
	Lines      []OrderLine `json:"lines"`
}

type OrderLines struct {
	Lines []OrderLine `json:"lines"`
}

// OrderListing holds the query parameters of GET /api/v1/orders.
type OrderListing struct {
	Stage string `form:"stage"`
	Page  *int   `form:"page"`
	Size  *int   `form:"size"`
}

// ReportPeriod holds the optional fromDate and toDate query parameters.
type ReportPeriod struct {
	FromDate *string `form:"fromDate"`
	ToDate   *string `form:"toDate"`
}

func (p ReportPeriod) from() string {
	return lo.FromPtr(p.FromDate)
}

func (p ReportPeriod) to() string {
	return lo.FromPtr(p.ToDate)
}
