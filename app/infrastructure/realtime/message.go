package realtime

import "pizzaops.io/admin-dashboard/app/domain/notice"

type MessageType string

const (
	MessageOrderCreated       MessageType = "ORDER_CREATED"
	MessageOrderStatusChanged MessageType = "ORDER_STATUS_CHANGED"
	MessageOrderDelayed       MessageType = "ORDER_DELAYED"
	MessageOrderCancelled     MessageType = "ORDER_CANCELLED"
	MessagePaymentSuccessful  MessageType = "PAYMENT_SUCCESSFUL"
	MessagePaymentFailed      MessageType = "PAYMENT_FAILED"
)

// Message is one frame exchanged with the admin notification channel.
type Message struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message,omitempty"`
	OrderID string      `json:"orderId,omitempty"`
}

type handling struct {
	level    notice.Level
	fallback string
}

var orderMessages = map[MessageType]handling{
	MessageOrderCreated:       {level: notice.LevelSuccess, fallback: "New order received"},
	MessageOrderStatusChanged: {level: notice.LevelSuccess, fallback: "Order status changed"},
	MessageOrderDelayed:       {level: notice.LevelInfo, fallback: "Order delayed"},
	MessageOrderCancelled:     {level: notice.LevelInfo, fallback: "Order cancelled"},
	MessagePaymentSuccessful:  {level: notice.LevelSuccess, fallback: "Payment received"},
	MessagePaymentFailed:      {level: notice.LevelError, fallback: "Payment failed"},
}
