// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// library catalog HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// {"message": ...} body of HTTP responses. Keeping them in one place keeps
// the wording of the public API consistent.
package app

// Success messages.
const (
	MsgWelcome         = "<h1>Welcome to E_Library Backend API</h1>"
	MsgUserCreated     = "User created successfully!"
	MsgLoginSuccessful = "Login successful!"
	MsgAuthorAdded     = "Author added successfully!"
	MsgPublisherAdded  = "Publisher added successfully!"
	MsgBookAdded       = "Book added successfully!"
)

// Request errors.
const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed."

	MsgUsernameAndPasswordRequired = "Username and password are required."
	MsgPasswordTooLong             = "Password must not exceed 72 bytes."
	MsgAuthorNamesRequired         = "First name and last name are required."
	MsgPublisherNameRequired       = "Publisher name is required."
	MsgBookFieldsRequired          = "Title, publisher ID, and author ID are required."
	MsgTitleQueryRequired          = `A "title" query parameter is required for searching.`
	MsgNameQueryRequired           = `A "name" query parameter is required for searching.`

	// MsgInvalidID is returned when a path id is not a base-10 integer.
	MsgInvalidID = "Invalid ID."

	MsgRouteNotFound = "Not found."
)

// Authentication and authorization errors.
const (
	MsgUsernameAlreadyExists     = "Username already exists."
	MsgInvalidUsernameOrPassword = "Invalid username or password."

	MsgTokenRequired     = "A token is required for authentication."
	MsgInvalidToken      = "Invalid Token."
	MsgAdminRoleRequired = "Access denied. Admin role required."
	MsgFailedToAuth      = "Failed to authenticate user."
)

// Server-side errors. The route decides which one the client sees.
const (
	MsgInternalServerError = "Internal server error."
	MsgDatabaseError       = "Database error."

	MsgDatabaseErrorAddingAuthor    = "Database error while adding author."
	MsgDatabaseErrorAddingPublisher = "Database error while adding publisher."
	MsgDatabaseErrorAddingBook      = "Database error while adding book. Check if author and publisher IDs are correct."
	MsgDatabaseErrorFetchingBooks   = "Database error while fetching books."

	MsgDatabaseErrorSearchingBooks      = "Database error while searching for books."
	MsgDatabaseErrorSearchingAuthors    = "Database error while searching for authors."
	MsgDatabaseErrorSearchingPublishers = "Database error while searching for publishers."

	MsgBookNotFound = "Book not found."
)
