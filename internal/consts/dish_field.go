package consts

// DishField is the name of a form field accepted by the dish endpoints.
type DishField string

const (
	DishFieldName        DishField = "nombre"
	DishFieldPrice       DishField = "precio"
	DishFieldCategory    DishField = "categoria"
	DishFieldDescription DishField = "descripcion"
	DishFieldAvailable   DishField = "disponible"
	DishFieldImage       DishField = "imagen"
)

const (
	// DefaultDishCategory is stored when a dish is created without categoria.
	DefaultDishCategory = "General"
)
