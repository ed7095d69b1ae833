package models

type Amenity struct {
	Base
	Name string `gorm:"type:varchar(50);not null" json:"name"`
}
