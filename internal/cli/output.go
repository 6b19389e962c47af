package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/go-library-catalog/models"
	"github.com/samber/lo"
)

const emptyCell = "-"

// render prints v as indented JSON with --json, otherwise as a table built
// by rows.
func (a *app) render(v any, header []string, rows [][]string) error {
	if a.asJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

var bookHeader = []string{"ID", "TITLE", "TYPE", "PRICE", "AUTHOR", "PUBLISHER"}

func bookRows(books []models.BookListItem) [][]string {
	return lo.Map(books, func(b models.BookListItem, _ int) []string {
		return []string{
			strconv.FormatInt(b.BookID, 10),
			b.Title,
			lo.FromPtrOr(b.Type, emptyCell),
			priceCell(b.Price),
			b.AuthorName,
			b.PublisherName,
		}
	})
}

var authorHeader = []string{"ID", "NAME", "COUNTRY", "CITY"}

func authorRows(authors []models.Author) [][]string {
	return lo.Map(authors, func(au models.Author, _ int) []string {
		return []string{
			strconv.FormatInt(au.AuthorID, 10),
			au.FullName(),
			lo.FromPtrOr(au.Country, emptyCell),
			lo.FromPtrOr(au.City, emptyCell),
		}
	})
}

var publisherHeader = []string{"ID", "NAME", "CITY"}

func publisherRows(publishers []models.Publisher) [][]string {
	return lo.Map(publishers, func(p models.Publisher, _ int) []string {
		return []string{
			strconv.FormatInt(p.PublisherID, 10),
			p.Name,
			lo.FromPtrOr(p.City, emptyCell),
		}
	})
}

var bookDetailsHeader = []string{"FIELD", "VALUE"}

func bookDetailsRows(b models.BookDetails) [][]string {
	return [][]string{
		{"ID", strconv.FormatInt(b.BookID, 10)},
		{"Title", b.Title},
		{"Type", lo.FromPtrOr(b.Type, emptyCell)},
		{"Price", priceCell(b.Price)},
		{"Author", b.AuthorName},
		{"Author country", lo.FromPtrOr(b.AuthorCountry, emptyCell)},
		{"Author city", lo.FromPtrOr(b.AuthorCity, emptyCell)},
		{"Publisher", b.PublisherName},
		{"Publisher city", lo.FromPtrOr(b.PublisherCity, emptyCell)},
	}
}

func priceCell(price *float64) string {
	if price == nil {
		return emptyCell
	}
	return strconv.FormatFloat(*price, 'f', 2, 64)
}
