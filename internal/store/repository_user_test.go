package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "username", "password_hash", "role", "first_name", "last_name", "created_at"}

func TestUserRepository_CreateUser(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr error
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users \(username,password_hash,role,first_name,last_name\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING id`).
					WithArgs("john", "hash", "user", sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
			},
			wantID: 7,
		},
		{
			name: "unique violation",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO users").
					WillReturnError(pgError(pgerrcode.UniqueViolation))
			},
			wantErr: ErrUsernameAlreadyExists,
		},
		{
			name: "unexpected db error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO users").
					WillReturnError(errors.New("db network error"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)
			repo := NewUserRepository(db, logger.Nop())

			id, err := repo.CreateUser(context.Background(), models.User{
				Username:     "john",
				PasswordHash: "hash",
				FirstName:    strPtr("John"),
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestUserRepository_CreateUser_KeepsExplicitRole(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("root", "hash", "admin", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.CreateUser(context.Background(), models.User{
		Username:     "root",
		PasswordHash: "hash",
		Role:         models.RoleAdmin,
	})
	require.NoError(t, err)
}

func TestUserRepository_FindUserByUsername(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, username, password_hash, role, first_name, last_name, created_at FROM users WHERE username = \$1`).
					WithArgs("john").
					WillReturnRows(sqlmock.NewRows(userRowColumns).
						AddRow(1, "john", "hash", "admin", "John", nil, now))
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs("john").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "empty result",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs("john").
					WillReturnRows(sqlmock.NewRows(userRowColumns))
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs("john").
					WillReturnError(errors.New("db failure"))
			},
			wantErr: ErrScanningRow,
		},
		{
			name: "wrong row shape",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs("john").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
			},
			wantErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)
			repo := NewUserRepository(db, logger.Nop())

			user, err := repo.FindUserByUsername(context.Background(), "john")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), user.UserID)
			assert.Equal(t, "john", user.Username)
			assert.Equal(t, "hash", user.PasswordHash)
			assert.Equal(t, models.RoleAdmin, user.Role)
			require.NotNil(t, user.FirstName)
			assert.Equal(t, "John", *user.FirstName)
			assert.Nil(t, user.LastName)
		})
	}
}

func TestUserRepository_FindUserByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(3, "jane", "hash", "user", nil, nil, time.Now()))

	user, err := repo.FindUserByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "jane", user.Username)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestUserRepository_UpdateUserRole(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE users SET role = \$1 WHERE username = \$2`).
					WithArgs("admin", "john").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "unknown user",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE users").
					WithArgs("admin", "john").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE users").
					WillReturnError(errors.New("db failure"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)
			repo := NewUserRepository(db, logger.Nop())

			err := repo.UpdateUserRole(context.Background(), "john", models.RoleAdmin)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
