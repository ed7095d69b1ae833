package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a JSON-encoded list of IDs stored in a single text column,
// portable across SQLite and PostgreSQL.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

type Place struct {
	Base
	Title       string     `gorm:"type:varchar(50);not null" json:"title"`
	Description string     `gorm:"type:varchar(500);not null" json:"description"`
	Price       float64    `gorm:"not null" json:"price"`
	Latitude    float64    `gorm:"not null" json:"latitude"`
	Longitude   float64    `gorm:"not null" json:"longitude"`
	OwnerID     string     `gorm:"type:varchar(36);not null;index" json:"owner_id"`
	Amenities   StringList `gorm:"type:text" json:"amenities"`

	// Foreign Key Relationship
	Owner User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}
