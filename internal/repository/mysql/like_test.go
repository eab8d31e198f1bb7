package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gouthampai05/the-final-empathway-sub001/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func testLike() domain.BlogLike {
	return domain.BlogLike{
		BlogID:     "11111111-2222-3333-4444-555555555555",
		DeviceHash: "abc123",
		CreatedAt:  time.Now(),
	}
}

func TestLikeInsertNewRow(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewLikeRepository(gdb)
	like := testLike()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `blog_likes`").
		WithArgs(like.BlogID, like.DeviceHash, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	inserted, err := repo.Insert(context.Background(), like)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeInsertDuplicateRow(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewLikeRepository(gdb)
	like := testLike()

	// The conflict clause swallows the duplicate key, zero rows change.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `blog_likes`").
		WithArgs(like.BlogID, like.DeviceHash, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	inserted, err := repo.Insert(context.Background(), like)
	require.NoError(t, err)
	assert.False(t, inserted)
}

func TestLikeRemoveExistingRow(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewLikeRepository(gdb)
	like := testLike()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `blog_likes`").
		WithArgs(like.BlogID, like.DeviceHash).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	removed, err := repo.Remove(context.Background(), like)
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestLikeRemoveAbsentRow(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewLikeRepository(gdb)
	like := testLike()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `blog_likes`").
		WithArgs(like.BlogID, like.DeviceHash).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	removed, err := repo.Remove(context.Background(), like)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestLikeExists(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewLikeRepository(gdb)
	like := testLike()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `blog_likes`").
		WithArgs(like.BlogID, like.DeviceHash).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), like)
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `blog_likes`").
		WithArgs(like.BlogID, like.DeviceHash).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	exists, err = repo.Exists(context.Background(), like)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLikeCountByBlog(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewLikeRepository(gdb)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `blog_likes`").
		WithArgs("blog-1").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(42))

	count, err := repo.CountByBlog(context.Background(), "blog-1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}
