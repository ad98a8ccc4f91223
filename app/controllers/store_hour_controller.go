package controllers

import (
	"github.com/fabiogif/moday-backoffice/app/services"
	"github.com/fabiogif/moday-backoffice/pkg/ctx"
)

type StoreHourController struct {
	service *services.StoreHourService
}

func NewStoreHourController() *StoreHourController {
	return &StoreHourController{service: services.NewStoreHourService()}
}

// Index returns the full weekly timetable.
func (sc *StoreHourController) Index(c *ctx.Context) {
	hours, err := sc.service.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(hours)
}

// Show returns one opening window.
func (sc *StoreHourController) Show(c *ctx.Context) {
	hour, err := sc.service.Find(c.ParamUint("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(hour)
}

// Store creates an opening window after interval validation.
func (sc *StoreHourController) Store(c *ctx.Context) {
	var input services.StoreHourInput
	if !c.BindJSON(&input) {
		return
	}

	hour, err := sc.service.Create(actorID(c), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Created(hour)
}

// Update edits an opening window; its own row is excluded from the
// overlap check.
func (sc *StoreHourController) Update(c *ctx.Context) {
	var input services.StoreHourInput
	if !c.BindJSON(&input) {
		return
	}

	hour, err := sc.service.Update(actorID(c), c.ParamUint("id"), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(hour)
}

// Destroy removes an opening window.
func (sc *StoreHourController) Destroy(c *ctx.Context) {
	if err := sc.service.Delete(actorID(c), c.ParamUint("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.Success(map[string]any{"deleted": true})
}
