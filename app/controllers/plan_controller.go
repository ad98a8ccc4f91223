package controllers

import (
	"github.com/fabiogif/moday-backoffice/app/services"
	"github.com/fabiogif/moday-backoffice/pkg/ctx"
)

type PlanController struct {
	service *services.PlanService
}

func NewPlanController() *PlanController {
	return &PlanController{service: services.NewPlanService()}
}

func (pc *PlanController) Index(c *ctx.Context) {
	plans, err := pc.service.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(plans)
}

func (pc *PlanController) Show(c *ctx.Context) {
	plan, err := pc.service.Find(c.ParamUint("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(plan)
}

func (pc *PlanController) Store(c *ctx.Context) {
	var input services.PlanInput
	if !c.BindJSON(&input) {
		return
	}

	plan, err := pc.service.Create(actorID(c), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Created(plan)
}

func (pc *PlanController) Update(c *ctx.Context) {
	var input services.PlanInput
	if !c.BindJSON(&input) {
		return
	}

	plan, err := pc.service.Update(actorID(c), c.ParamUint("id"), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(plan)
}

func (pc *PlanController) Destroy(c *ctx.Context) {
	if err := pc.service.Delete(actorID(c), c.ParamUint("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.Success(map[string]any{"deleted": true})
}
