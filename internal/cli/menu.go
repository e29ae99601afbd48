// Package cli implements the interactive text menu around the inventory
// store: it renders the product table, prompts for raw field values and
// reports store errors without ever terminating the session.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rogerio-castellano/inventory-console/internal/repo"
)

// Menu option identifiers, in display order.
const (
	optionAdd = iota + 1
	optionDelete
	optionUpdate
	optionExit
)

// Menu drives one interactive session over an Inventory. Input and output
// are injected so tests can script a session.
type Menu struct {
	inv repo.Inventory
	in  *bufio.Scanner
	out io.Writer
	log zerolog.Logger
}

// NewMenu creates a menu reading choices from in and rendering to out.
func NewMenu(inv repo.Inventory, in io.Reader, out io.Writer, log zerolog.Logger) *Menu {
	return &Menu{inv: inv, in: bufio.NewScanner(in), out: out, log: log}
}

// Run loops rendering the table and dispatching choices until the user picks
// exit or the input stream ends.
func (m *Menu) Run() {
	for {
		printTable(m.out, m.inv.List())
		printOptions(m.out)

		choice, ok := m.prompt("Choose an option: ")
		if !ok {
			fmt.Fprintln(m.out)
			fmt.Fprintln(m.out, "Session ended")
			return
		}
		n, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Fprintln(m.out, "Error: option must be a number")
			continue
		}

		switch n {
		case optionAdd:
			m.add()
		case optionDelete:
			m.delete()
		case optionUpdate:
			m.update()
		case optionExit:
			fmt.Fprintln(m.out, "Exiting...")
			return
		default:
			fmt.Fprintln(m.out, "Error: invalid option")
		}
	}
}

func (m *Menu) add() {
	name, ok := m.prompt("Product name: ")
	if !ok {
		return
	}
	price, ok := m.prompt("Product price: ")
	if !ok {
		return
	}
	stock, ok := m.prompt("Stock quantity: ")
	if !ok {
		return
	}

	id, err := m.inv.Add(name, price, stock)
	if err != nil {
		m.fail("add", err)
		return
	}
	m.log.Info().Int("id", id).Str("name", name).Msg("product added")
	fmt.Fprintln(m.out, "Product added successfully")
}

func (m *Menu) delete() {
	id, ok := m.promptID("Product id to delete: ")
	if !ok {
		return
	}
	if err := m.inv.Delete(id); err != nil {
		m.fail("delete", err)
		return
	}
	m.log.Info().Int("id", id).Msg("product deleted")
	fmt.Fprintln(m.out, "Product deleted successfully")
}

func (m *Menu) update() {
	id, ok := m.promptID("Product id to update: ")
	if !ok {
		return
	}
	entry, found := findEntry(m.inv.List(), id)
	if !found {
		m.fail("update", repo.ErrProductNotFound)
		return
	}
	fmt.Fprintf(m.out, "Current product: %s - %s - Stock: %d\n",
		entry.Product.Name, entry.Product.Price.StringFixed(2), entry.Product.Stock)

	name, ok := m.prompt("New name (Enter to keep current): ")
	if !ok {
		return
	}
	price, ok := m.prompt("New price (Enter to keep current): ")
	if !ok {
		return
	}
	stock, ok := m.prompt("New quantity (Enter to keep current): ")
	if !ok {
		return
	}

	if err := m.inv.Update(id, name, price, stock); err != nil {
		m.fail("update", err)
		return
	}
	m.log.Info().Int("id", id).Msg("product updated")
	fmt.Fprintln(m.out, "Product updated successfully")
}

// prompt writes the message and reads one trimmed line; ok is false when the
// input stream is exhausted.
func (m *Menu) prompt(msg string) (string, bool) {
	fmt.Fprint(m.out, msg)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptID reads a numeric product id; a non-numeric value is reported and
// the pending operation is abandoned.
func (m *Menu) promptID(msg string) (repo.ProductID, bool) {
	text, ok := m.prompt(msg)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(text)
	if err != nil {
		fmt.Fprintln(m.out, "Error: id must be a number")
		return 0, false
	}
	return id, true
}

func (m *Menu) fail(op string, err error) {
	m.log.Debug().Err(err).Str("op", op).Msg("operation rejected")
	fmt.Fprintf(m.out, "Error: %v\n", err)
}
