package controllers

import (
	"github.com/fabiogif/moday-backoffice/app/services"
	"github.com/fabiogif/moday-backoffice/pkg/ctx"
)

type ServiceTypeController struct {
	service *services.ServiceTypeService
}

func NewServiceTypeController() *ServiceTypeController {
	return &ServiceTypeController{service: services.NewServiceTypeService()}
}

func (tc *ServiceTypeController) Index(c *ctx.Context) {
	types, err := tc.service.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(types)
}

func (tc *ServiceTypeController) Show(c *ctx.Context) {
	st, err := tc.service.Find(c.ParamUint("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(st)
}

func (tc *ServiceTypeController) Store(c *ctx.Context) {
	var input services.ServiceTypeInput
	if !c.BindJSON(&input) {
		return
	}

	st, err := tc.service.Create(actorID(c), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Created(st)
}

func (tc *ServiceTypeController) Update(c *ctx.Context) {
	var input services.ServiceTypeInput
	if !c.BindJSON(&input) {
		return
	}

	st, err := tc.service.Update(actorID(c), c.ParamUint("id"), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(st)
}

func (tc *ServiceTypeController) Destroy(c *ctx.Context) {
	if err := tc.service.Delete(actorID(c), c.ParamUint("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.Success(map[string]any{"deleted": true})
}
