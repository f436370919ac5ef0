package domain

var (
	MessageFailedCreateCategory   = "failed to create category"
	MessageFailedCreateTag        = "failed to create tag"
	MessageFailedCreateIngredient = "failed to create ingredient"
)

type (
	CreateCategoryRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description,omitempty"`
	}

	CreateTagRequest struct {
		Name string `json:"name" validate:"required"`
	}

	CreateIngredientRequest struct {
		Name string `json:"name" validate:"required"`
		Unit string `json:"unit" validate:"required"`
	}
)
