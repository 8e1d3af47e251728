package doc

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/AminahAkhtar/tinydb-withdp/lib/storage"
	"github.com/spf13/cobra"
)

var (
	setCmd = &cobra.Command{
		Use:   "set [table] [id] [json]",
		Short: "Inserts or updates a document",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, id, value := args[0], args[1], args[2]

			if !json.Valid([]byte(value)) {
				return fmt.Errorf("document must be valid JSON: %s", value)
			}

			doc, err := db.Read()
			if err != nil {
				return err
			}
			if doc == nil {
				doc = storage.Document{}
			}
			if doc[table] == nil {
				doc[table] = storage.Table{}
			}
			doc[table][id] = json.RawMessage(value)

			if err := db.Write(doc); err != nil {
				return err
			}
			fmt.Println("set successfully")
			return nil
		},
	}
	getCmd = &cobra.Command{
		Use:   "get [table] [id]",
		Short: "Reads a document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, id := args[0], args[1]

			doc, err := db.Read()
			if err != nil {
				return err
			}

			value, ok := doc[table][id]
			fmt.Printf("table=%s, id=%s, found=%v, doc=%s\n", table, id, ok, value)
			return nil
		},
	}
	delCmd = &cobra.Command{
		Use:   "del [table] [id]",
		Short: "Deletes a document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, id := args[0], args[1]

			doc, err := db.Read()
			if err != nil {
				return err
			}
			if _, ok := doc[table][id]; !ok {
				return fmt.Errorf("document %s/%s not found", table, id)
			}
			delete(doc[table], id)

			if err := db.Write(doc); err != nil {
				return err
			}
			fmt.Println("delete successfully")
			return nil
		},
	}
	tablesCmd = &cobra.Command{
		Use:   "tables",
		Short: "Lists all tables with their document counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := db.Read()
			if err != nil {
				return err
			}

			names := make([]string, 0, len(doc))
			for name := range doc {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				fmt.Printf("%s (%d documents)\n", name, len(doc[name]))
			}
			return nil
		},
	}
	purgeCmd = &cobra.Command{
		Use:   "purge",
		Short: "Removes all tables and documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := db.Write(storage.Document{}); err != nil {
				return err
			}
			fmt.Println("purged successfully")
			return nil
		},
	}
)
