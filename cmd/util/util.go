package util

import (
	"fmt"
	"strings"

	"github.com/AminahAkhtar/tinydb-withdp/lib/middleware"
	"github.com/AminahAkhtar/tinydb-withdp/lib/serializer"
	"github.com/AminahAkhtar/tinydb-withdp/lib/storage"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	// register the storage engines
	_ "github.com/AminahAkhtar/tinydb-withdp/lib/storage/engines/jsonfile"
	_ "github.com/AminahAkhtar/tinydb-withdp/lib/storage/engines/memory"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupMiddlewareFlags adds the middleware chain flags to a command
func SetupMiddlewareFlags(cmd *cobra.Command) {
	key := "cache"
	cmd.PersistentFlags().Bool(key, false, WrapString("Buffer writes in memory and flush them in batches"))

	key = "cache-size"
	cmd.PersistentFlags().Int(key, middleware.DefaultWriteCacheSize, WrapString("Number of buffered writes that triggers an automatic flush"))

	key = "log"
	cmd.PersistentFlags().Bool(key, false, WrapString("Record a timestamped log entry for every read and write"))

	key = "log-file"
	cmd.PersistentFlags().String(key, middleware.DefaultLogPath, WrapString("Path of the operation log file"))

	key = "log-close"
	cmd.PersistentFlags().Bool(key, false, WrapString("Also record close operations in the log"))

	key = "metrics"
	cmd.PersistentFlags().Bool(key, false, WrapString("Count storage operations and print them in Prometheus text format on exit"))
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("tinydb")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetSerializer creates a serializer based on configuration
func GetSerializer() (serializer.ISerializer, error) {
	switch viper.GetString("serializer") {
	case "json":
		return serializer.NewJSONSerializer(), nil
	case "gob":
		return serializer.NewGOBSerializer(), nil
	default:
		return nil, fmt.Errorf("invalid serializer %s", viper.GetString("serializer"))
	}
}

// GetStorageFactory assembles the configured middleware chain around the
// configured storage engine and returns the outermost deferred constructor.
// Nothing is constructed until the returned factory is invoked.
//
// Chain order (outermost first): metrics, logging, caching, engine. The
// metrics middleware is also returned so callers can dump its counters.
func GetStorageFactory() (storage.Factory, *middleware.MetricsMiddleware, error) {
	s, err := GetSerializer()
	if err != nil {
		return nil, nil, err
	}

	factory, err := storage.GetEngine(viper.GetString("storage"), storage.EngineConfig{
		Path:       viper.GetString("path"),
		Serializer: s,
	})
	if err != nil {
		return nil, nil, err
	}

	if viper.GetBool("cache") {
		caching, err := middleware.NewCaching(factory, &middleware.CachingOptions{
			WriteCacheSize: viper.GetInt("cache-size"),
		})
		if err != nil {
			return nil, nil, err
		}
		factory = caching.Factory()
	}

	if viper.GetBool("log") {
		logging := middleware.NewLogging(factory, &middleware.LoggingOptions{
			LogPath:  viper.GetString("log-file"),
			LogClose: viper.GetBool("log-close"),
		})
		factory = logging.Factory()
	}

	var m *middleware.MetricsMiddleware
	if viper.GetBool("metrics") {
		m = middleware.NewMetrics(factory)
		factory = m.Factory()
	}

	return factory, m, nil
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
