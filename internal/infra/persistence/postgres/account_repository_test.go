package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var accountColumns = []string{"id", "email", "name", "password_hash", "role", "created_at", "updated_at"}

func newMockRepository(t *testing.T) (repository.AccountRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return NewAccountRepository(db), mock
}

func TestAccountRepository_Create(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "accounts"`)).
		WithArgs(sqlmock.AnyArg(), "jane@example.com", "Jane", "$2a$10$hash", "standard", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	account := &entity.Account{Email: "Jane@Example.com", Name: "Jane", PasswordHash: "$2a$10$hash"}
	err := repo.Create(context.Background(), account)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.Equal(t, uuid.Version(7), account.ID.Version())
	assert.Equal(t, "jane@example.com", account.Email)
	assert.Equal(t, entity.RoleStandard, account.Role)
	assert.False(t, account.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_CreateDuplicateEmail(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "accounts"`)).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "accounts_email_key"})

	err := repo.Create(context.Background(), &entity.Account{Email: "jane@example.com", Name: "Jane", PasswordHash: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_CreateDatabaseError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "accounts"`)).
		WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), &entity.Account{Email: "jane@example.com", Name: "Jane", PasswordHash: "x"})
	require.Error(t, err)

	var dbErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &dbErr))
	assert.False(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestAccountRepository_FindByEmail(t *testing.T) {
	repo, mock := newMockRepository(t)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(id.String(), "jane@example.com", "Jane", "$2a$10$hash", "admin", now, now))

	account, err := repo.FindByEmail(context.Background(), "  JANE@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, account.ID)
	assert.Equal(t, entity.RoleAdmin, account.Role)
	assert.Equal(t, "$2a$10$hash", account.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows(accountColumns))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(accountColumns))

	_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	_, err = repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindByIDDatabaseError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE id = $1`)).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.FindByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrAccountNotFound)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestAccountRepository_UpdateRole(t *testing.T) {
	repo, mock := newMockRepository(t)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "accounts" SET "role"=$1,"updated_at"=$2 WHERE email = $3`)).
		WithArgs("creator", sqlmock.AnyArg(), "jane@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(id.String(), "jane@example.com", "Jane", "$2a$10$hash", "creator", now, now))

	account, err := repo.UpdateRole(context.Background(), "Jane@example.com", entity.RoleCreator)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCreator, account.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_UpdateRoleUnknownAccount(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "accounts"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateRole(context.Background(), "ghost@example.com", entity.RoleAdmin)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_UpdateRoleRejectsUnknownRole(t *testing.T) {
	repo, mock := newMockRepository(t)

	_, err := repo.UpdateRole(context.Background(), "jane@example.com", entity.Role("owner"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_CountByRole(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT role, COUNT\(\*\) AS total FROM "accounts" GROUP BY "?role"?`).
		WillReturnRows(sqlmock.NewRows([]string{"role", "total"}).
			AddRow("standard", 7).
			AddRow("admin", 1).
			AddRow("creator", 2))

	counts, err := repo.CountByRole(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[entity.Role]int64{
		entity.RoleStandard: 7,
		entity.RoleAdmin:    1,
		entity.RoleCreator:  2,
	}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConstraintErrors(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation}, "insert")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: pgCheckViolation}))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: pgCheckViolation}))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgNotNullViolation}))
	assert.False(t, isUniqueConstraintViolation(errors.New("duplicate key")))
}
