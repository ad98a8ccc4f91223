package controllers

import (
	"github.com/fabiogif/moday-backoffice/app/services"
	"github.com/fabiogif/moday-backoffice/pkg/ctx"
)

type EventController struct {
	service *services.EventService
}

func NewEventController() *EventController {
	return &EventController{service: services.NewEventService()}
}

func (ec *EventController) Index(c *ctx.Context) {
	events, pagination, err := ec.service.List(c.QueryInt("page", 1), c.QueryInt("limit", 15))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Paginated(events, pagination)
}

func (ec *EventController) Show(c *ctx.Context) {
	event, err := ec.service.Find(c.ParamUint("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(event)
}

func (ec *EventController) Store(c *ctx.Context) {
	var input services.EventInput
	if !c.BindJSON(&input) {
		return
	}

	event, err := ec.service.Create(actorID(c), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Created(event)
}

func (ec *EventController) Update(c *ctx.Context) {
	var input services.EventInput
	if !c.BindJSON(&input) {
		return
	}

	event, err := ec.service.Update(actorID(c), c.ParamUint("id"), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(event)
}

func (ec *EventController) Destroy(c *ctx.Context) {
	if err := ec.service.Delete(actorID(c), c.ParamUint("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.Success(map[string]any{"deleted": true})
}
