package models

import (
	"encoding/json"
	"strconv"
	"time"
)

type OrderStatus string

const (
	OrderEnquiry    OrderStatus = "Enquiry"
	OrderPending    OrderStatus = "Pending"
	OrderInProgress OrderStatus = "In Progress"
	OrderWaiting    OrderStatus = "Waiting on Customer"
	OrderCompleted  OrderStatus = "Completed"
	OrderCancelled  OrderStatus = "Cancelled"
)

func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderEnquiry, OrderPending, OrderInProgress, OrderWaiting, OrderCompleted, OrderCancelled}
}

type OrderChannel string

const (
	ChannelInstagram OrderChannel = "Instagram"
	ChannelFacebook  OrderChannel = "Facebook"
	ChannelEtsy      OrderChannel = "Etsy"
	ChannelWebsite   OrderChannel = "Website"
	ChannelInPerson  OrderChannel = "In Person"
	ChannelOther     OrderChannel = "Other"
)

func OrderChannels() []OrderChannel {
	return []OrderChannel{ChannelInstagram, ChannelFacebook, ChannelEtsy, ChannelWebsite, ChannelInPerson, ChannelOther}
}

type Fulfilment string

const (
	FulfilCollection    Fulfilment = "Collection"
	FulfilLocalDelivery Fulfilment = "Local Delivery"
	FulfilShipped       Fulfilment = "Shipped"
)

func Fulfilments() []Fulfilment {
	return []Fulfilment{FulfilCollection, FulfilLocalDelivery, FulfilShipped}
}

type Order struct {
	ID           string       `json:"id"`
	CustomerName string       `json:"customerName"`
	Item         string       `json:"item"`
	Status       OrderStatus  `json:"status"`
	Channel      OrderChannel `json:"channel"`
	Price        *float64     `json:"price,omitempty"` // nil means no price quoted
	DepositPaid  bool         `json:"depositPaid"`
	DueDate      string       `json:"dueDate"` // YYYY-MM-DD or empty
	CreatedAt    string       `json:"createdAt"`
	Notes        string       `json:"notes"`
	Fulfilment   Fulfilment   `json:"fulfilment"`
}

// Open reports whether the order still needs work.
func (o Order) Open() bool {
	return o.Status != OrderCompleted && o.Status != OrderCancelled
}

func (o Order) Normalize() Order {
	if o.ID == "" {
		o.ID = NewID()
	}
	if !containsStatus(OrderStatuses(), o.Status) {
		o.Status = OrderEnquiry
	}
	if !containsStatus(OrderChannels(), o.Channel) {
		o.Channel = ChannelInstagram
	}
	if !containsStatus(Fulfilments(), o.Fulfilment) {
		o.Fulfilment = FulfilCollection
	}
	if o.CreatedAt == "" {
		o.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return o
}

func containsStatus[T ~string](domain []T, v T) bool {
	for _, d := range domain {
		if v == d {
			return true
		}
	}
	return false
}

// UnmarshalJSON tolerates the price field arriving as a number, a numeric
// string, an empty string, or null — all shapes earlier data revisions wrote.
func (o *Order) UnmarshalJSON(data []byte) error {
	type alias Order
	aux := struct {
		*alias
		Price json.RawMessage `json:"price"`
	}{alias: (*alias)(o)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	o.Price = parsePrice(aux.Price)
	return nil
}

func parsePrice(raw json.RawMessage) *float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return &num
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return &v
		}
	}
	return nil
}
