package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rogerio-castellano/inventory-console/internal/repo"
)

const separatorLength = 25

// printTable renders the store contents as a fixed-width table in insertion
// order, prices with two decimals.
func printTable(w io.Writer, entries []repo.Entry) {
	sep := strings.Repeat("=", separatorLength)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, "Product list:")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\t| Name\t| Price\t| Stock")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t| %s\t| %s\t| %d\n",
			e.ID, e.Product.Name, e.Product.Price.StringFixed(2), e.Product.Stock)
	}
	tw.Flush()
	fmt.Fprintln(w, sep)
}

func printOptions(w io.Writer) {
	fmt.Fprintf(w, "[%d] Add\n[%d] Delete\n[%d] Update\n[%d] Exit\n",
		optionAdd, optionDelete, optionUpdate, optionExit)
}

func findEntry(entries []repo.Entry, id repo.ProductID) (repo.Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return repo.Entry{}, false
}
