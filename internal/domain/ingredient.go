package domain

// Ingredient is catalog reference data. Name and unit together identify it.
type Ingredient struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// NewIngredient is an ingredient definition coming from the bulk import file.
type NewIngredient struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}
