package domain

var (
	MessageFailedCreateRecipe = "failed to create recipe"
	MessageFailedUpdateRecipe = "failed to update recipe"
)

type (
	RecipeIngredientInput struct {
		IngredientID uint    `json:"ingredient_id" validate:"required,gt=0"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
		Unit         string  `json:"unit" validate:"required"`
		Notes        string  `json:"notes,omitempty"`
	}

	RecipeStepInput struct {
		StepNumber  int    `json:"step_number" validate:"required,gt=0"`
		Instruction string `json:"instruction" validate:"required"`
		ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`
	}

	CreateRecipeRequest struct {
		Name        string                  `json:"name" validate:"required"`
		Description string                  `json:"description,omitempty"`
		PrepTime    *int                    `json:"prep_time,omitempty" validate:"omitempty,gte=0"`
		CookTime    *int                    `json:"cook_time,omitempty" validate:"omitempty,gte=0"`
		Servings    *int                    `json:"servings,omitempty" validate:"omitempty,gt=0"`
		Difficulty  string                  `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
		ImageURL    string                  `json:"image_url,omitempty" validate:"omitempty,url"`
		Ingredients []RecipeIngredientInput `json:"ingredients,omitempty" validate:"omitempty,dive"`
		Steps       []RecipeStepInput       `json:"steps,omitempty" validate:"omitempty,dive"`
		CategoryIDs []uint                  `json:"category_ids,omitempty" validate:"omitempty,dive,gt=0"`
		TagIDs      []uint                  `json:"tag_ids,omitempty" validate:"omitempty,dive,gt=0"`
	}

	// UpdateRecipeRequest uses pointer fields so an absent field can be told
	// apart from an explicit zero value: absent leaves the prior value
	// untouched, present overwrites. A non-nil VersionNote triggers a new
	// version snapshot.
	UpdateRecipeRequest struct {
		Name        *string `json:"name,omitempty"`
		Description *string `json:"description,omitempty"`
		PrepTime    *int    `json:"prep_time,omitempty" validate:"omitempty,gte=0"`
		CookTime    *int    `json:"cook_time,omitempty" validate:"omitempty,gte=0"`
		Servings    *int    `json:"servings,omitempty" validate:"omitempty,gt=0"`
		Difficulty  *string `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
		ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
		VersionNote *string `json:"version_note,omitempty"`
	}
)
