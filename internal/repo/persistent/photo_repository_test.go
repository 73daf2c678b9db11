package persistent

import (
	"testing"

	"photoshare/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func emptyPhotoRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id"})
}

func TestListAppliesApprovedPredicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPhotoRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "photos" WHERE status = \$1`).
		WithArgs("approved").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT \* FROM "photos" WHERE status = \$1 ORDER BY created_at DESC`).
		WithArgs("approved", 12).
		WillReturnRows(emptyPhotoRows())

	_, total, err := repo.List(entity.PhotoQuery{Page: 1, Limit: 12, Filter: entity.FilterAll, Sort: entity.SortNewest})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSearchMatchesTitleCaptionAndLoweredTag(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPhotoRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "photos" WHERE status = \$1 AND \(title ILIKE \$2 OR caption ILIKE \$3 OR \$4 = ANY\(tags\)\)`).
		WithArgs("approved", "%Glow%", "%Glow%", "glow").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "photos" WHERE status = \$1 AND \(title ILIKE \$2 OR caption ILIKE \$3 OR \$4 = ANY\(tags\)\)`).
		WithArgs("approved", "%Glow%", "%Glow%", "glow", 12).
		WillReturnRows(emptyPhotoRows())

	_, total, err := repo.List(entity.PhotoQuery{Page: 1, Limit: 12, Filter: entity.FilterAll, Sort: entity.SortNewest, Search: "Glow"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUnmoderatedOwnerDropsStatusClause(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPhotoRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "photos" WHERE creator_id = \$1`).
		WithArgs("creator-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "photos" WHERE creator_id = \$1 ORDER BY created_at DESC`).
		WithArgs("creator-1", 12).
		WillReturnRows(emptyPhotoRows())

	_, total, err := repo.List(entity.PhotoQuery{
		Page: 1, Limit: 12, Filter: entity.FilterAll, Sort: entity.SortNewest,
		CreatorID: "creator-1", IncludeUnmoderated: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderFor(t *testing.T) {
	cases := map[entity.PhotoSort]string{
		entity.SortNewest:  "created_at DESC",
		entity.SortOldest:  "created_at ASC",
		entity.SortPopular: "likes DESC, created_at DESC",
		entity.SortRating:  "rating DESC, created_at DESC",
	}
	for sort, want := range cases {
		assert.Equal(t, want, orderFor(sort))
	}
}

func TestUpdateWritesMetadataColumnsOnly(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPhotoRepository(db)

	// Anchored so any extra column, counters included, fails the match.
	mock.ExpectExec(`^UPDATE "photos" SET "title"=\$1,"caption"=\$2,"location"=\$3,"people"=\$4,"tags"=\$5,"category"=\$6,"updated_at"=\$7 WHERE id = \$8$`).
		WithArgs("New title", "New caption", "Iceland", sqlmock.AnyArg(), sqlmock.AnyArg(), "nature", sqlmock.AnyArg(), "photo-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(&entity.Photo{
		ID:       "photo-1",
		Title:    "New title",
		Caption:  "New caption",
		Location: "Iceland",
		Tags:     []string{"nature"},
		Category: "nature",
		Likes:    7,
		Views:    100,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPhotoRepository(db)

	mock.ExpectExec(`UPDATE "photos" SET "status"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus("missing", entity.StatusApproved)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
