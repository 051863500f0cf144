package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"account-vault/internal"
	"account-vault/repositories"
	"account-vault/services"
	"account-vault/transfer"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" default:"./data/badger"`
	SlotCount      int    `envconfig:"SLOT_COUNT" default:"3"`
	TransferSecret string `envconfig:"TRANSFER_SECRET"`
	// VAULT_COLOURS enables colorized output for better table readability
	Colours bool `envconfig:"VAULT_COLOURS" default:"true"`
}

func main() {
	command := flag.String("cmd", "list", "list | create | import | export | remove")
	slot := flag.Int("slot", 0, "Target slot number")
	name := flag.String("name", "", "Display name for -cmd create")
	avatar := flag.String("avatar", "", "Optional avatar token for -cmd create")
	payloadFile := flag.String("file", "-", "Payload file for -cmd import (- for stdin)")
	flag.Parse()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal("Error while reading configuration: ", err)
	}

	db, err := badger.Open(badger.DefaultOptions(cfg.BadgerFilepath).WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	logger := internal.GetLoggerFromString("WARN")
	store := repositories.NewSlotStore(db, logger, cfg.SlotCount)
	registry, err := services.NewSlotRegistry(store, logger)
	if err != nil {
		log.Fatal("Error while loading slots: ", err)
	}
	codec := transfer.NewCodec(cfg.TransferSecret)
	imports := services.NewImportService(registry, codec, logger)
	accounts := services.NewAccountService(registry, codec, logger)

	switch *command {
	case "list":
		listSlots(registry, cfg.Colours)
	case "create":
		account, err := accounts.Create(*slot, *name, *avatar)
		if err != nil {
			log.Fatal("Create failed: ", err)
		}
		fmt.Printf("Slot %d bound to %s (%s)\n", *slot, account.Name, account.ID)
	case "import":
		payload, err := readPayload(*payloadFile)
		if err != nil {
			log.Fatal("Reading payload failed: ", err)
		}
		account, err := imports.Import(*slot, payload)
		if err != nil {
			log.Fatal("Import failed: ", err)
		}
		fmt.Printf("Slot %d bound to imported account %s (%s)\n", *slot, account.Name, account.ID)
	case "export":
		payload, err := accounts.Export(*slot)
		if err != nil {
			log.Fatal("Export failed: ", err)
		}
		fmt.Println(payload)
	case "remove":
		if err := registry.UnbindAccount(*slot); err != nil {
			log.Fatal("Remove failed: ", err)
		}
		fmt.Printf("Slot %d is empty again\n", *slot)
	default:
		log.Fatalf("Unknown command %q", *command)
	}
}

func listSlots(registry services.IRegistry, colours bool) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Slot", "Status", "Account ID", "Name", "Avatar", "Created"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, slot := range registry.ListSlots() {
		if slot.IsEmpty() {
			status := "EMPTY"
			if colours {
				status = color.New(color.FgGray).Render(status)
			}
			table.Append([]string{fmt.Sprint(slot.Slot), status, "", "", "", ""})
			continue
		}

		status := "BOUND"
		if colours {
			status = color.New(color.FgGreen).Render(status)
		}
		// Show the first 12 characters of the ID for readability
		displayID := slot.Account.ID
		if len(displayID) > 12 {
			displayID = displayID[:12] + "…"
		}
		table.Append([]string{
			fmt.Sprint(slot.Slot),
			status,
			displayID,
			slot.Account.Name,
			slot.Account.DisplayAvatar(),
			slot.Account.CreatedAt.Format(time.RFC3339),
		})
	}
	table.Render()
}

func readPayload(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return strings.TrimSpace(string(data)), err
	}
	data, err := os.ReadFile(path)
	return strings.TrimSpace(string(data)), err
}
