package controllers

import (
	"net/http"

	"github.com/fabiogif/moday-backoffice/app/services"
	"github.com/fabiogif/moday-backoffice/pkg/ctx"
)

// Product image uploads are capped well below the global body limit.
const maxImageBytes = 2 << 20 // 2 MB

type ProductController struct {
	service *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{service: services.NewProductService()}
}

// Index lists products with pagination.
func (pc *ProductController) Index(c *ctx.Context) {
	products, pagination, err := pc.service.List(c.QueryInt("page", 1), c.QueryInt("limit", 15))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Paginated(products, pagination)
}

// Active lists the active catalogue (cached).
func (pc *ProductController) Active(c *ctx.Context) {
	products, err := pc.service.ListActive()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(products)
}

// Show returns one product with its variations and optionals.
func (pc *ProductController) Show(c *ctx.Context) {
	product, err := pc.service.Find(c.ParamUint("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(product)
}

// Store creates a product.
func (pc *ProductController) Store(c *ctx.Context) {
	var input services.ProductInput
	if !c.BindJSON(&input) {
		return
	}

	product, err := pc.service.Create(actorID(c), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Created(product)
}

// Update edits a product.
func (pc *ProductController) Update(c *ctx.Context) {
	var input services.ProductInput
	if !c.BindJSON(&input) {
		return
	}

	product, err := pc.service.Update(actorID(c), c.ParamUint("id"), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(product)
}

// Destroy deletes a product.
func (pc *ProductController) Destroy(c *ctx.Context) {
	if err := pc.service.Delete(actorID(c), c.ParamUint("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.Success(map[string]any{"deleted": true})
}

// StoreVariation adds a variation to a product.
func (pc *ProductController) StoreVariation(c *ctx.Context) {
	var input services.VariationInput
	if !c.BindJSON(&input) {
		return
	}

	variation, err := pc.service.AddVariation(actorID(c), c.ParamUint("id"), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Created(variation)
}

// DestroyVariation removes a variation.
func (pc *ProductController) DestroyVariation(c *ctx.Context) {
	if err := pc.service.RemoveVariation(actorID(c), c.ParamUint("id"), c.ParamUint("variationId")); err != nil {
		respondErr(c, err)
		return
	}
	c.Success(map[string]any{"deleted": true})
}

// StoreOptional adds an optional to a product.
func (pc *ProductController) StoreOptional(c *ctx.Context) {
	var input services.OptionalInput
	if !c.BindJSON(&input) {
		return
	}

	optional, err := pc.service.AddOptional(actorID(c), c.ParamUint("id"), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Created(optional)
}

// DestroyOptional removes an optional.
func (pc *ProductController) DestroyOptional(c *ctx.Context) {
	if err := pc.service.RemoveOptional(actorID(c), c.ParamUint("id"), c.ParamUint("optionalId")); err != nil {
		respondErr(c, err)
		return
	}
	c.Success(map[string]any{"deleted": true})
}

// UploadImage stores the product image from a multipart form field
// named "image".
func (pc *ProductController) UploadImage(c *ctx.Context) {
	if err := c.R.ParseMultipartForm(maxImageBytes); err != nil {
		c.Error(http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := c.R.FormFile("image")
	if err != nil {
		c.FieldError("image", "The image field is required.")
		return
	}
	defer file.Close()

	product, err := pc.service.UploadImage(actorID(c), c.ParamUint("id"), header.Filename, file)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(product)
}
