// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-library-catalog/internal/config"
	"github.com/MKhiriev/go-library-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsPattern_EscapesWildcards(t *testing.T) {
	tests := []struct {
		fragment string
		want     string
	}{
		{fragment: "war", want: "%war%"},
		{fragment: "100%", want: `%100\%%`},
		{fragment: "snake_case", want: `%snake\_case%`},
		{fragment: `back\slash`, want: `%back\\slash%`},
		{fragment: "", want: "%%"},
	}

	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			assert.Equal(t, tt.want, containsPattern(tt.fragment))
		})
	}
}

func TestQueryBuilder_Placeholders(t *testing.T) {
	tests := []struct {
		driver      string
		placeholder string
	}{
		{driver: config.DriverPostgres, placeholder: "$1"},
		{driver: config.DriverSQLite, placeholder: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			q := newQueryBuilder(tt.driver)

			query, args, err := q.findUserByUsername("john")
			require.NoError(t, err)
			assert.Contains(t, query, "username = "+tt.placeholder)
			assert.Equal(t, []any{"john"}, args)

			if tt.driver == config.DriverSQLite {
				assert.NotContains(t, query, "$")
			}
		})
	}
}

func TestQueryBuilder_CreateStatementsReturnID(t *testing.T) {
	q := newQueryBuilder(config.DriverSQLite)

	builders := map[string]func() (string, []any, error){
		"users": func() (string, []any, error) {
			return q.createUser(models.User{Username: "john", PasswordHash: "hash", Role: models.RoleUser})
		},
		"authors": func() (string, []any, error) {
			return q.createAuthor(models.Author{FirstName: "Leo", LastName: "Tolstoy"})
		},
		"publishers": func() (string, []any, error) {
			return q.createPublisher(models.Publisher{Name: "Penguin"})
		},
		"books": func() (string, []any, error) {
			return q.createBook(models.Book{Title: "War and Peace", AuthorID: 1, PublisherID: 1})
		},
	}

	for table, build := range builders {
		t.Run(table, func(t *testing.T) {
			query, args, err := build()
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(query, "INSERT INTO "+table))
			assert.True(t, strings.HasSuffix(query, "RETURNING id"))
			assert.NotEmpty(t, args)
		})
	}
}

func TestQueryBuilder_SearchAuthorsMatchesBothNames(t *testing.T) {
	q := newQueryBuilder(config.DriverPostgres)

	query, args, err := q.searchAuthors("Tol")
	require.NoError(t, err)

	lower := strings.ToLower(query)
	assert.Contains(t, lower, "lower(first_name) like lower($1)")
	assert.Contains(t, lower, "lower(last_name) like lower($2)")
	assert.Contains(t, lower, " or ")
	assert.Equal(t, []any{"%Tol%", "%Tol%"}, args)
}

func TestQueryBuilder_BookDetailsJoinsAuthorAndPublisher(t *testing.T) {
	q := newQueryBuilder(config.DriverPostgres)

	query, args, err := q.getBookByID(42)
	require.NoError(t, err)

	assert.Contains(t, query, "JOIN authors a ON a.id = b.author_id")
	assert.Contains(t, query, "JOIN publishers p ON p.id = b.publisher_id")
	assert.Contains(t, query, "a.first_name || ' ' || a.last_name AS author_name")
	assert.Contains(t, query, "p.city AS publisher_city")
	assert.Contains(t, query, "WHERE b.id = $1")
	assert.Equal(t, []any{int64(42)}, args)
}

func TestQueryBuilder_UpdateUserRole(t *testing.T) {
	q := newQueryBuilder(config.DriverPostgres)

	query, args, err := q.updateUserRole("john", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET role = $1 WHERE username = $2", query)
	assert.Equal(t, []any{"admin", "john"}, args)
}
