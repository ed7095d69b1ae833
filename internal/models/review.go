package models

type Review struct {
	Base
	Text    string `gorm:"type:varchar(500);not null" json:"text"`
	Rating  int    `gorm:"not null" json:"rating"`
	PlaceID string `gorm:"type:varchar(36);not null;index" json:"place_id"`
	UserID  string `gorm:"type:varchar(36);not null;index" json:"user_id"`

	// Foreign Key Relationships
	Place Place `gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE" json:"-"`
	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
