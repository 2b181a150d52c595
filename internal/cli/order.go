package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wfahy/lifeops/internal/filter"
	"github.com/wfahy/lifeops/internal/models"
	"github.com/wfahy/lifeops/internal/validation"
)

type OrderCmd struct {
	Add        OrderAddCmd        `cmd:"" help:"Add an order."`
	List       OrderListCmd       `cmd:"" help:"Show the order board."`
	Status     OrderStatusCmd     `cmd:"" help:"Move an order to another status."`
	Fulfilment OrderFulfilmentCmd `cmd:"" help:"Set how the order will be fulfilled."`
	Deposit    OrderDepositCmd    `cmd:"" help:"Toggle the deposit-paid flag."`
	Delete     OrderDeleteCmd     `cmd:"" help:"Delete an order."`
}

type OrderAddCmd struct {
	Customer   string `arg:"" help:"Customer name."`
	Item       string `arg:"" help:"What they ordered."`
	Price      string `short:"p" help:"Quoted price (blank for none)."`
	Due        string `short:"d" help:"Due date (YYYY-MM-DD)."`
	Status     string `short:"s" help:"Status." default:"Enquiry"`
	Channel    string `short:"c" help:"Channel (Instagram|Facebook|Etsy|Website|In Person|Other)." default:"Instagram"`
	Fulfilment string `short:"f" help:"Fulfilment (Collection|Local Delivery|Shipped)." default:"Collection"`
	Notes      string `short:"n" help:"Optional notes."`
}

func (c *OrderAddCmd) Run(ctx *Context) error {
	if r := validation.Order(c.Customer, c.Item, c.Price, c.Due, c.Status, c.Channel, c.Fulfilment); !r.Ok() {
		return r.Err()
	}

	var price *float64
	if trimmed := strings.TrimSpace(c.Price); trimmed != "" {
		v, _ := strconv.ParseFloat(trimmed, 64)
		price = &v
	}

	order := models.Order{
		ID:           models.NewID(),
		CustomerName: strings.TrimSpace(c.Customer),
		Item:         strings.TrimSpace(c.Item),
		Status:       models.OrderStatus(c.Status),
		Channel:      models.OrderChannel(c.Channel),
		Price:        price,
		DueDate:      c.Due,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		Notes:        strings.TrimSpace(c.Notes),
		Fulfilment:   models.Fulfilment(c.Fulfilment),
	}

	orders := ctx.Store.Orders()
	orders = append(orders, order)
	ctx.Store.SaveOrders(orders)

	fmt.Printf("Added order for %s: %s (ID: %s)\n", order.CustomerName, order.Item, order.ID)
	return nil
}

type OrderListCmd struct {
	Status     string `short:"s" help:"Filter by status (or All)." default:"All"`
	Channel    string `short:"c" help:"Filter by channel (or All)." default:"All"`
	Fulfilment string `short:"f" help:"Filter by fulfilment (or All)." default:"All"`
	Search     string `short:"q" help:"Search customer, item and notes."`
}

func (c *OrderListCmd) Run(ctx *Context) error {
	orders := ctx.Store.Orders()
	filtered := filter.Orders(orders, filter.OrderCriteria{
		Status:     c.Status,
		Channel:    c.Channel,
		Fulfilment: c.Fulfilment,
		Search:     c.Search,
	})
	lanes := filter.GroupByStatus(filtered, models.OrderStatuses(), func(o models.Order) models.OrderStatus { return o.Status })

	open := 0
	for _, o := range filtered {
		if o.Open() {
			open++
		}
	}
	fmt.Printf("Showing %d order%s (%d open)\n\n", len(filtered), plural(len(filtered)), open)

	for _, status := range models.OrderStatuses() {
		lane := lanes[status]
		fmt.Printf("%s (%d)\n", status, len(lane))
		if len(lane) == 0 {
			fmt.Println("  No orders in this lane.")
			continue
		}
		for _, o := range lane {
			fmt.Printf("  %s — %s · %s · %s · %s%s (ID: %s)\n",
				o.CustomerName, o.Item, o.Channel, o.Fulfilment, formatPrice(o.Price), depositTag(o), o.ID)
			if o.DueDate != "" {
				fmt.Printf("    Due: %s\n", o.DueDate)
			}
			if o.Notes != "" {
				fmt.Printf("    Notes: %s\n", o.Notes)
			}
		}
	}
	return nil
}

func formatPrice(p *float64) string {
	if p == nil {
		return "no price"
	}
	return fmt.Sprintf("€%.2f", *p)
}

func depositTag(o models.Order) string {
	if o.DepositPaid {
		return " · deposit paid"
	}
	return ""
}

type OrderStatusCmd struct {
	ID     string `arg:"" help:"Order ID."`
	Status string `arg:"" help:"New status."`
}

func (c *OrderStatusCmd) Run(ctx *Context) error {
	if r := validation.Order("x", "x", "", "", c.Status, "", ""); !r.Ok() {
		return r.Err()
	}

	orders := ctx.Store.Orders()
	for i, o := range orders {
		if o.ID == c.ID {
			orders[i].Status = models.OrderStatus(c.Status)
			ctx.Store.SaveOrders(orders)
			fmt.Printf("Moved order for %s to %s\n", o.CustomerName, c.Status)
			return nil
		}
	}
	return fmt.Errorf("order not found: %s", c.ID)
}

type OrderFulfilmentCmd struct {
	ID         string `arg:"" help:"Order ID."`
	Fulfilment string `arg:"" help:"New fulfilment method."`
}

func (c *OrderFulfilmentCmd) Run(ctx *Context) error {
	if r := validation.Order("x", "x", "", "", "", "", c.Fulfilment); !r.Ok() {
		return r.Err()
	}

	orders := ctx.Store.Orders()
	for i, o := range orders {
		if o.ID == c.ID {
			orders[i].Fulfilment = models.Fulfilment(c.Fulfilment)
			ctx.Store.SaveOrders(orders)
			fmt.Printf("Order for %s will be fulfilled by %s\n", o.CustomerName, c.Fulfilment)
			return nil
		}
	}
	return fmt.Errorf("order not found: %s", c.ID)
}

type OrderDepositCmd struct {
	ID string `arg:"" help:"Order ID."`
}

func (c *OrderDepositCmd) Run(ctx *Context) error {
	orders := ctx.Store.Orders()
	for i, o := range orders {
		if o.ID == c.ID {
			orders[i].DepositPaid = !o.DepositPaid
			ctx.Store.SaveOrders(orders)
			state := "unpaid"
			if orders[i].DepositPaid {
				state = "paid"
			}
			fmt.Printf("Deposit for %s marked %s\n", o.CustomerName, state)
			return nil
		}
	}
	return fmt.Errorf("order not found: %s", c.ID)
}

type OrderDeleteCmd struct {
	ID  string `arg:"" help:"Order ID to delete."`
	Yes bool   `short:"y" help:"Skip confirmation."`
}

func (c *OrderDeleteCmd) Run(ctx *Context) error {
	orders := ctx.Store.Orders()
	idx := -1
	for i, o := range orders {
		if o.ID == c.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("order not found: %s", c.ID)
	}

	if !c.Yes && !Confirm(fmt.Sprintf("Delete order for %s (%s)?", orders[idx].CustomerName, orders[idx].Item)) {
		fmt.Println("Cancelled.")
		return nil
	}

	name := orders[idx].CustomerName
	orders = append(orders[:idx], orders[idx+1:]...)
	ctx.Store.SaveOrders(orders)
	fmt.Printf("Deleted order for %s\n", name)
	return nil
}
