package repository

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/stayloop/stayloop/internal/models"
)

// MemoryRepository stores entities in a process-local map. Nothing survives
// a restart; it exists for tests and for running without a database.
type MemoryRepository[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func NewMemoryRepository[T any]() *MemoryRepository[T] {
	return &MemoryRepository[T]{items: make(map[string]*T)}
}

func (r *MemoryRepository[T]) Add(entity *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *entity
	r.items[asEntity(entity).EntityID()] = &stored
	return nil
}

func (r *MemoryRepository[T]) Get(id string) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entity, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *entity
	return &cp, nil
}

func (r *MemoryRepository[T]) GetAll() ([]*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entities := make([]*T, 0, len(r.items))
	for _, entity := range r.items {
		cp := *entity
		entities = append(entities, &cp)
	}
	return entities, nil
}

func (r *MemoryRepository[T]) Update(id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entity, ok := r.items[id]
	if !ok {
		return nil
	}
	value := reflect.ValueOf(entity).Elem()
	structType := value.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Anonymous {
			continue
		}
		raw, ok := fields[columnName(field.Name)]
		if !ok {
			continue
		}
		target := value.Field(i)
		src := reflect.ValueOf(raw)
		if !src.Type().ConvertibleTo(target.Type()) {
			return fmt.Errorf("cannot assign %T to field %s", raw, field.Name)
		}
		target.Set(src.Convert(target.Type()))
	}
	asEntity(entity).Touch(time.Now().UTC())
	return nil
}

func (r *MemoryRepository[T]) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *MemoryRepository[T]) GetByAttribute(column string, value any) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, entity := range r.items {
		structValue := reflect.ValueOf(entity).Elem()
		structType := structValue.Type()
		for i := 0; i < structType.NumField(); i++ {
			if columnName(structType.Field(i).Name) != column {
				continue
			}
			fieldValue := structValue.Field(i).Interface()
			if reflect.DeepEqual(fieldValue, value) {
				cp := *entity
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func asEntity(e any) models.Entity {
	entity, ok := e.(models.Entity)
	if !ok {
		panic(fmt.Sprintf("repository: %T does not embed models.Base", e))
	}
	return entity
}

// columnName converts a Go field name to its GORM column name
// (FirstName -> first_name, OwnerID -> owner_id), so update maps use
// the same keys against both repository implementations.
func columnName(field string) string {
	var b strings.Builder
	runes := []rune(field)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && !unicode.IsUpper(runes[i-1]) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
