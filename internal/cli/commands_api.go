package cli

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-library-catalog/models"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func (a *app) signupCommand() *cobra.Command {
	var request models.SignupRequest
	var firstName, lastName string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a user account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("first-name") {
				request.FirstName = lo.ToPtr(firstName)
			}
			if cmd.Flags().Changed("last-name") {
				request.LastName = lo.ToPtr(lastName)
			}

			api, err := a.api()
			if err != nil {
				return err
			}
			resp, err := api.Signup(cmd.Context(), request)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s id=%d\n", resp.Message, resp.UserID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&request.Username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&request.Password, "password", "p", "", "password")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")

	return cmd
}

func (a *app) loginCommand() *cobra.Command {
	var request models.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a bearer token",
		Long: `Log in and print a bearer token. The token is the only output, so it can be
exported for admin commands:

  export ` + tokenEnv + `=$(catalogctl login -u admin -p secret)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := a.api()
			if err != nil {
				return err
			}
			resp, err := api.Login(cmd.Context(), request)
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, resp.Token)
			return nil
		},
	}
	cmd.Flags().StringVarP(&request.Username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&request.Password, "password", "p", "", "password")

	return cmd
}

func (a *app) authorCommand() *cobra.Command {
	authorCmd := &cobra.Command{
		Use:   "author",
		Short: "Manage authors",
	}

	var request models.CreateAuthorRequest
	var country, city, address string

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an author (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("country") {
				request.Country = lo.ToPtr(country)
			}
			if flags.Changed("city") {
				request.City = lo.ToPtr(city)
			}
			if flags.Changed("address") {
				request.Address = lo.ToPtr(address)
			}

			api, err := a.api()
			if err != nil {
				return err
			}
			resp, err := api.CreateAuthor(cmd.Context(), request)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s id=%d\n", resp.Message, resp.AuthorID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&request.FirstName, "first-name", "", "first name")
	addCmd.Flags().StringVar(&request.LastName, "last-name", "", "last name")
	addCmd.Flags().StringVar(&country, "country", "", "country")
	addCmd.Flags().StringVar(&city, "city", "", "city")
	addCmd.Flags().StringVar(&address, "address", "", "address")

	searchCmd := &cobra.Command{
		Use:   "search NAME",
		Short: "Search authors by first or last name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := a.api()
			if err != nil {
				return err
			}
			authors, err := api.SearchAuthors(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return a.render(authors, authorHeader, authorRows(authors))
		},
	}

	booksCmd := &cobra.Command{
		Use:   "books AUTHOR_ID",
		Short: "List the books of an author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			api, err := a.api()
			if err != nil {
				return err
			}
			books, err := api.ListBooksByAuthor(cmd.Context(), id)
			if err != nil {
				return err
			}

			return a.render(books, bookHeader, bookRows(books))
		},
	}

	authorCmd.AddCommand(addCmd, searchCmd, booksCmd)
	return authorCmd
}

func (a *app) publisherCommand() *cobra.Command {
	publisherCmd := &cobra.Command{
		Use:   "publisher",
		Short: "Manage publishers",
	}

	var request models.CreatePublisherRequest
	var city string

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a publisher (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("city") {
				request.City = lo.ToPtr(city)
			}

			api, err := a.api()
			if err != nil {
				return err
			}
			resp, err := api.CreatePublisher(cmd.Context(), request)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s id=%d\n", resp.Message, resp.PublisherID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&request.Name, "name", "", "publisher name")
	addCmd.Flags().StringVar(&city, "city", "", "city")

	searchCmd := &cobra.Command{
		Use:   "search NAME",
		Short: "Search publishers by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := a.api()
			if err != nil {
				return err
			}
			publishers, err := api.SearchPublishers(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return a.render(publishers, publisherHeader, publisherRows(publishers))
		},
	}

	booksCmd := &cobra.Command{
		Use:   "books PUBLISHER_ID",
		Short: "List the books of a publisher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			api, err := a.api()
			if err != nil {
				return err
			}
			books, err := api.ListBooksByPublisher(cmd.Context(), id)
			if err != nil {
				return err
			}

			return a.render(books, bookHeader, bookRows(books))
		},
	}

	publisherCmd.AddCommand(addCmd, searchCmd, booksCmd)
	return publisherCmd
}

func (a *app) bookCommand() *cobra.Command {
	bookCmd := &cobra.Command{
		Use:   "book",
		Short: "Manage books",
	}

	var request models.CreateBookRequest
	var bookType string
	var price float64

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("type") {
				request.Type = lo.ToPtr(bookType)
			}
			if cmd.Flags().Changed("price") {
				request.Price = lo.ToPtr(price)
			}

			api, err := a.api()
			if err != nil {
				return err
			}
			resp, err := api.CreateBook(cmd.Context(), request)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s id=%d\n", resp.Message, resp.BookID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&request.Title, "title", "", "book title")
	addCmd.Flags().StringVar(&bookType, "type", "", "book type")
	addCmd.Flags().Float64Var(&price, "price", 0, "book price")
	addCmd.Flags().Int64Var(&request.AuthorID, "author-id", 0, "author id")
	addCmd.Flags().Int64Var(&request.PublisherID, "publisher-id", 0, "publisher id")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := a.api()
			if err != nil {
				return err
			}
			books, err := api.ListBooks(cmd.Context())
			if err != nil {
				return err
			}

			return a.render(books, bookHeader, bookRows(books))
		},
	}

	getCmd := &cobra.Command{
		Use:   "get BOOK_ID",
		Short: "Show one book with author and publisher details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			api, err := a.api()
			if err != nil {
				return err
			}
			book, err := api.GetBook(cmd.Context(), id)
			if err != nil {
				return err
			}

			return a.render(book, bookDetailsHeader, bookDetailsRows(book))
		},
	}

	searchCmd := &cobra.Command{
		Use:   "search TITLE",
		Short: "Search books by title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := a.api()
			if err != nil {
				return err
			}
			books, err := api.SearchBooks(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return a.render(books, bookHeader, bookRows(books))
		},
	}

	bookCmd.AddCommand(addCmd, listCmd, getCmd, searchCmd)
	return bookCmd
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", raw, err)
	}
	return id, nil
}
