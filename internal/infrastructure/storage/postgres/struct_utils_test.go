package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"invoicer/internal/core/entity"
)

type testResource struct {
	entity.Resource
	Email *string `db:"email"`
	Note  string  `db:"-"`
}

func TestExtractDBColumns_Embedded(t *testing.T) {
	cols := ExtractDBColumns[testResource]()
	assert.Equal(t, []string{"id", "owner_id", "created_at", "name", "email"}, cols)
}

func TestStructToMap(t *testing.T) {
	email := "a@b.c"
	created := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	r := &testResource{
		Resource: entity.Resource{
			OwnedEntity: entity.OwnedEntity{ID: 4, OwnerID: 9, CreatedAt: created},
			Name:        "ACME",
		},
		Email: &email,
		Note:  "ignored",
	}

	m := StructToMap(r, "id", "created_at")

	assert.Equal(t, map[string]any{
		"owner_id": int64(9),
		"name":     "ACME",
		"email":    &email,
	}, m)
}

func TestStructToMap_NotStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
	assert.Nil(t, StructToMap((*testResource)(nil)))
}
