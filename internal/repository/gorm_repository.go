package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRepository stores entities in a relational database through GORM.
type GormRepository[T any] struct {
	db *gorm.DB
}

func NewGormRepository[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{db: db}
}

func (r *GormRepository[T]) Add(entity *T) error {
	// Associations are set through their own ID columns, never upserted here.
	return r.db.Omit(clause.Associations).Create(entity).Error
}

func (r *GormRepository[T]) Get(id string) (*T, error) {
	var entity T
	err := r.db.Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *GormRepository[T]) GetAll() ([]*T, error) {
	var entities []*T
	err := r.db.Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *GormRepository[T]) Update(id string, fields map[string]any) error {
	// GORM refreshes updated_at itself; a missing ID updates zero rows.
	return r.db.Model(new(T)).Where("id = ?", id).Updates(fields).Error
}

func (r *GormRepository[T]) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(new(T)).Error
}

func (r *GormRepository[T]) GetByAttribute(column string, value any) (*T, error) {
	var entity T
	err := r.db.Where(fmt.Sprintf("%s = ?", column), value).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
