package model

// Dish is a menu item. Every field is always serialized, empty or not.
type Dish struct {
	ID          uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"nombre" gorm:"column:nombre;size:100;not null"`
	Price       float64 `json:"precio" gorm:"column:precio;not null"`
	Category    string  `json:"categoria" gorm:"column:categoria;size:50"`
	Description string  `json:"descripcion" gorm:"column:descripcion;type:text"`
	ImageURL    string  `json:"imagen" gorm:"column:imagen;size:500"`
	Available   bool    `json:"disponible" gorm:"column:disponible;not null;default:true"`
}

func (Dish) TableName() string {
	return "dishes"
}
