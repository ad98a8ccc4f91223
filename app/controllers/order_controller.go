package controllers

import (
	"github.com/fabiogif/moday-backoffice/app/services"
	"github.com/fabiogif/moday-backoffice/pkg/ctx"
	"github.com/fabiogif/moday-backoffice/pkg/ws"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController() *OrderController {
	return &OrderController{service: services.NewOrderService()}
}

// Index lists orders, optionally filtered by ?status=.
func (oc *OrderController) Index(c *ctx.Context) {
	orders, pagination, err := oc.service.List(
		c.Query("status"),
		c.QueryInt("page", 1),
		c.QueryInt("limit", 15),
	)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Paginated(orders, pagination)
}

// Show returns one order with its item tree.
func (oc *OrderController) Show(c *ctx.Context) {
	order, err := oc.service.Find(c.ParamUint("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(order)
}

// Store creates an order; every line is priced server-side.
func (oc *OrderController) Store(c *ctx.Context) {
	var input services.OrderInput
	if !c.BindJSON(&input) {
		return
	}

	order, err := oc.service.Create(actorID(c), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Created(order)
}

// UpdateStatus moves one order to a new status.
func (oc *OrderController) UpdateStatus(c *ctx.Context) {
	var input services.StatusInput
	if !c.BindJSON(&input) {
		return
	}

	order, err := oc.service.UpdateStatus(actorID(c), c.ParamUint("id"), input.Status)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(order)
}

// BulkUpdateStatus moves several orders at once.
func (oc *OrderController) BulkUpdateStatus(c *ctx.Context) {
	var input services.BulkStatusInput
	if !c.BindJSON(&input) {
		return
	}

	if err := oc.service.BulkUpdateStatus(actorID(c), input); err != nil {
		respondErr(c, err)
		return
	}
	c.Success(map[string]any{"updated": len(input.IDs)})
}

// Feed upgrades the connection to the live order WebSocket feed.
func (oc *OrderController) Feed(c *ctx.Context) {
	ws.Upgrade(c.W, c.R, services.OrderFeed)
}
