package repository

import (
	"sync"
	"testing"

	"sistema-provale/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type foreignKeyInfo struct {
	Table    string `gorm:"column:table"`
	From     string `gorm:"column:from"`
	To       string `gorm:"column:to"`
	OnDelete string `gorm:"column:on_delete"`
}

func foreignKeys(t *testing.T, db *gorm.DB, table string) []foreignKeyInfo {
	t.Helper()

	var fks []foreignKeyInfo
	require.NoError(t, db.Raw("PRAGMA foreign_key_list(" + table + ")").Scan(&fks).Error)
	return fks
}

func TestSchema_RelationsPointAtTheReferencedTable(t *testing.T) {
	db := setupTestDB(t)

	t.Run("every relation is a belongs-to", func(t *testing.T) {
		cache := &sync.Map{}
		for _, model := range testutil.AllEntities() {
			s, err := schema.Parse(model, cache, db.NamingStrategy)
			require.NoError(t, err)
			for name, rel := range s.Relationships.Relations {
				assert.Equal(t, schema.BelongsTo, rel.Type, "%s.%s", s.Name, name)
			}
		}
	})

	t.Run("catalog tables reference nothing", func(t *testing.T) {
		assert.Empty(t, foreignKeys(t, db, "Estados"))
		assert.Empty(t, foreignKeys(t, db, "Roles"))
		assert.Empty(t, foreignKeys(t, db, "TiposBeneficio"))
	})

	t.Run("usuario references estado and rol", func(t *testing.T) {
		fks := foreignKeys(t, db, "Usuarios")
		assert.Contains(t, fks, foreignKeyInfo{Table: "Estados", From: "codEstado", To: "codEstado", OnDelete: "RESTRICT"})
		assert.Contains(t, fks, foreignKeyInfo{Table: "Roles", From: "codRol", To: "codRol", OnDelete: "RESTRICT"})
	})

	t.Run("sector zona uses its own sector column", func(t *testing.T) {
		fks := foreignKeys(t, db, "SectoresZona")
		assert.Contains(t, fks, foreignKeyInfo{Table: "Sectores", From: "fkCodSector", To: "codSector", OnDelete: "RESTRICT"})
	})

	t.Run("dependent rows cascade from their parent", func(t *testing.T) {
		assert.Contains(t, foreignKeys(t, db, "DatosObstetricos"),
			foreignKeyInfo{Table: "HistoricoBeneficiarios", From: "codHistoricoBeneficiario", To: "codHistoricoBeneficiario", OnDelete: "CASCADE"})
		assert.Contains(t, foreignKeys(t, db, "DetallePecosa"),
			foreignKeyInfo{Table: "Pecosas", From: "codPecosa", To: "codPecosa", OnDelete: "CASCADE"})

		for _, fk := range foreignKeys(t, db, "HistoricoBeneficiarios") {
			assert.NotEqual(t, "DatosObstetricos", fk.Table)
		}
		for _, fk := range foreignKeys(t, db, "Pecosas") {
			assert.NotEqual(t, "DetallePecosa", fk.Table)
		}
	})
}
