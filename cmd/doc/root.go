package doc

import (
	"fmt"
	"os"

	"github.com/AminahAkhtar/tinydb-withdp/cmd/util"
	"github.com/AminahAkhtar/tinydb-withdp/lib/middleware"
	"github.com/AminahAkhtar/tinydb-withdp/lib/storage"
	"github.com/spf13/cobra"
)

var (
	db         storage.IStorage
	metricsMid *middleware.MetricsMiddleware

	// DocumentCommands represents the document command group
	DocumentCommands = &cobra.Command{
		Use:                "doc",
		Short:              "Perform document operations on the database",
		PersistentPreRunE:  setupStorage,
		PersistentPostRunE: teardownStorage,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add the middleware chain flags to the doc command
	util.SetupMiddlewareFlags(DocumentCommands)

	// Add subcommands
	DocumentCommands.AddCommand(setCmd)
	DocumentCommands.AddCommand(getCmd)
	DocumentCommands.AddCommand(delCmd)
	DocumentCommands.AddCommand(tablesCmd)
	DocumentCommands.AddCommand(purgeCmd)
}

// setupStorage assembles and activates the configured middleware chain
func setupStorage(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	factory, m, err := util.GetStorageFactory()
	if err != nil {
		return err
	}

	// Invoking the outermost factory activates the whole chain
	db, err = factory()
	if err != nil {
		return err
	}
	metricsMid = m

	return nil
}

// teardownStorage closes the chain (flushing any buffered writes) and dumps
// the operation counters if metrics are enabled
func teardownStorage(_ *cobra.Command, _ []string) error {
	if db == nil {
		return nil
	}
	if err := db.Close(); err != nil {
		return err
	}

	if metricsMid != nil {
		fmt.Println()
		metricsMid.WritePrometheus(os.Stdout)
	}
	return nil
}
