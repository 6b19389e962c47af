package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorRepository_CreateAuthor(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr error
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO authors \(first_name,last_name,country,city,address\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING id`).
					WithArgs("Leo", "Tolstoy", "Russia", nil, nil).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
			},
			wantID: 11,
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO authors").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)
			repo := NewAuthorRepository(db, logger.Nop())

			id, err := repo.CreateAuthor(context.Background(), models.Author{
				FirstName: "Leo",
				LastName:  "Tolstoy",
				Country:   strPtr("Russia"),
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

func TestAuthorRepository_SearchAuthors(t *testing.T) {
	columns := []string{"id", "first_name", "last_name", "country", "city", "address"}

	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantCount int
		wantErr   error
	}{
		{
			name: "matches",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM authors WHERE \(LOWER\(first_name\) LIKE LOWER\(\$1\) ESCAPE '\\' OR LOWER\(last_name\) LIKE LOWER\(\$2\) ESCAPE '\\'\) ORDER BY id`).
					WithArgs("%tol%", "%tol%").
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow(1, "Leo", "Tolstoy", "Russia", nil, nil).
						AddRow(2, "Alexei", "Tolstoy", nil, nil, nil))
			},
			wantCount: 2,
		},
		{
			name: "no matches",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM authors").
					WillReturnRows(sqlmock.NewRows(columns))
			},
			wantCount: 0,
		},
		{
			name: "query error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM authors").
					WillReturnError(errors.New("db failure"))
			},
			wantErr: ErrExecutingQuery,
		},
		{
			name: "scan error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM authors").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
			},
			wantErr: ErrScanningRows,
		},
		{
			name: "row iteration error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM authors").
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow(1, "Leo", "Tolstoy", nil, nil, nil).
						RowError(0, errors.New("broken row")))
			},
			wantErr: ErrScanningRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)
			repo := NewAuthorRepository(db, logger.Nop())

			authors, err := repo.SearchAuthors(context.Background(), "tol")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, authors)
			assert.Len(t, authors, tt.wantCount)
		})
	}
}
