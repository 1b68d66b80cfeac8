package order

import (
	"net/url"
	"strconv"

	"pizzaops.io/admin-dashboard/app/domain/query"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type PaymentMethod string

const (
	PaymentMethodDigital PaymentMethod = "digital"
	PaymentMethodCOD     PaymentMethod = "cod"
)

type Order struct {
	ID              string        `json:"id"`
	OrderNo         string        `json:"orderNo"`
	UserID          string        `json:"userId"`
	OrderItems      []OrderItem   `json:"orderItems"`
	OrderStatus     OrderStatus   `json:"orderStatus"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	Subtotal        string        `json:"subtotal"`
	Tax             string        `json:"tax"`
	DeliveryCharge  string        `json:"deliveryCharge"`
	Total           string        `json:"total"`
	DeliveryAddress string        `json:"deliveryAddress"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       string        `json:"createdAt"`
	UpdatedAt       string        `json:"updatedAt"`
}

type OrderItem struct {
	ID                 string         `json:"id"`
	PizzaName          string         `json:"pizzaName"`
	SizeName           string         `json:"sizeName"`
	CrustName          string         `json:"crustName"`
	BasePizzaPrice     string         `json:"basePizzaPrice"`
	SizePrice          string         `json:"sizePrice"`
	CrustPrice         string         `json:"crustPrice"`
	ToppingsTotalPrice string         `json:"toppingsTotalPrice"`
	UnitPrice          string         `json:"unitPrice"`
	TotalPrice         string         `json:"totalPrice"`
	Quantity           int            `json:"quantity"`
	Toppings           []OrderTopping `json:"toppings"`
}

type OrderTopping struct {
	ID           string `json:"id"`
	ToppingName  string `json:"toppingName"`
	ToppingPrice string `json:"toppingPrice"`
}

type OrderList = query.ListResponse[Order]

// ListParams are the order table filters. Every field is part of the cache key.
type ListParams struct {
	query.Pagination
	OrderStatus   OrderStatus
	PaymentStatus PaymentStatus
	PaymentMethod PaymentMethod
}

var DefaultListParams = ListParams{Pagination: query.Pagination{Page: 1, Limit: 5}}

func (p ListParams) Values() url.Values {
	values := url.Values{}
	p.Pagination.Encode(values)
	query.SetString(values, "orderStatus", string(p.OrderStatus))
	query.SetString(values, "paymentStatus", string(p.PaymentStatus))
	query.SetString(values, "paymentMethod", string(p.PaymentMethod))
	return values
}

// Summary is the dashboard headline figures. Money amounts are decimal strings.
type Summary struct {
	TotalOrders       int    `json:"totalOrders"`
	TotalRevenue      string `json:"totalRevenue"`
	PendingOrders     int    `json:"pendingOrders"`
	DeliveredOrders   int    `json:"deliveredOrders"`
	CancelledOrders   int    `json:"cancelledOrders"`
	AverageOrderValue string `json:"averageOrderValue"`
}

type MonthlySales struct {
	Month   string `json:"month"`
	Orders  int    `json:"orders"`
	Revenue string `json:"revenue"`
}

type MonthlySalesParams struct {
	Year int
}

func (p MonthlySalesParams) Values() url.Values {
	values := url.Values{}
	if p.Year > 0 {
		values.Set("year", strconv.Itoa(p.Year))
	}
	return values
}
