package main

import (
	"chat-relay/repositories"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

// inspect prints the content of a relay store without touching it.
// It can run next to a live relay thanks to the read-only bypass.
func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	prefix := flag.String("prefix", "msg:", "Key prefix to scan (msg:, user:, email:, conv:, contact:)")
	limit := flag.Int("limit", 100, "Maximum number of entries, 0 for all")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	entries, err := repositories.Scan(db, *prefix, *limit)
	if err != nil {
		log.Fatal("Error while scanning: ", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Kind", "Detail"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, entry := range entries {
		table.Append([]string{entry.Key, kindStyle(entry.Kind).Render(entry.Kind), entry.Detail})
	}
	table.Render()
	footer := fmt.Sprintf("%d entries under %q", len(entries), *prefix)
	fmt.Println("\n" + color.New(color.BgBlack, color.FgGreen).Render(footer))
}

func kindStyle(kind string) color.Style {
	switch kind {
	case "msg":
		return color.New(color.FgCyan)
	case "user", "email":
		return color.New(color.FgYellow)
	case "conv", "contact":
		return color.New(color.FgMagenta)
	default:
		return color.New(color.FgGray)
	}
}
