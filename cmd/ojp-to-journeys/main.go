package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/ojp-to-journeys/config"
	"github.com/theoremus-urban-solutions/ojp-to-journeys/decoder"
	"github.com/theoremus-urban-solutions/ojp-to-journeys/formatter"
	"github.com/theoremus-urban-solutions/ojp-to-journeys/internal"
)

var (
	configPath string
	format     string
)

var rootCmd = &cobra.Command{
	Use:   "ojp-to-journeys",
	Short: "Decode saved OJP response documents into normalized journey JSON",
	Long: `ojp-to-journeys reads one complete OJP 2.0 response document from a
file and prints the normalized trip or location model as JSON. It does
not talk to the OJP endpoint itself; feed it responses captured by your
transport layer.`,
}

var tripsCmd = &cobra.Command{
	Use:   "trips <file>",
	Short: "Decode a trip response document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, emit, data, err := setup(args[0])
		if err != nil {
			return err
		}
		res := d.DecodeTripResponse(data)
		if res.Success {
			log.Printf("decoded %d trips from %s", len(res.Trips), args[0])
		} else {
			log.Printf("decode failed for %s: %s", args[0], res.ErrorMessage)
		}
		emit(res)
		return nil
	},
}

var locationsCmd = &cobra.Command{
	Use:   "locations <file>",
	Short: "Decode a location information response document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, emit, data, err := setup(args[0])
		if err != nil {
			return err
		}
		res := d.DecodeLocationResponse(data)
		if res.Success {
			log.Printf("decoded %d locations from %s", len(res.Locations), args[0])
		} else {
			log.Printf("decode failed for %s: %s", args[0], res.ErrorMessage)
		}
		emit(res)
		return nil
	},
}

// setup loads config and the input document and prepares the decoder
// and the output function both subcommands share.
func setup(path string) (*decoder.Decoder, func(any), []byte, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, err
	}

	d := decoder.NewDecoder(decoderOptions(cfg))
	rb := formatter.NewResponseBuilder(outputFormat(cfg) == "pretty")
	emit := func(res any) {
		fmt.Println(string(rb.BuildJSON(res)))
	}
	return d, emit, data, nil
}

// loadConfig reads --config when given; otherwise ./config.yml is
// optional and its absence falls back to defaults.
func loadConfig() (config.AppConfig, error) {
	if configPath != "" {
		return config.LoadAppConfig(configPath)
	}
	cfg, err := config.LoadAppConfig("config.yml")
	if err != nil {
		if os.IsNotExist(err) {
			return config.Default(), nil
		}
		return config.AppConfig{}, err
	}
	return cfg, nil
}

func decoderOptions(cfg config.AppConfig) decoder.Options {
	opts := decoder.Options{PlaceholderName: cfg.Decoder.PlaceholderName}
	for _, m := range cfg.Decoder.Modes {
		opts.ModeOverrides = append(opts.ModeOverrides, decoder.ModeMapping{
			PtMode:     m.PtMode,
			Submode:    m.Submode,
			Normalized: m.Normalized,
		})
	}
	return opts
}

func outputFormat(cfg config.AppConfig) string {
	if format != "" {
		return format
	}
	return cfg.Output.Format
}

func main() {
	internal.InitLogging()
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yml")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "output format: json|pretty (overrides config)")
	rootCmd.AddCommand(tripsCmd, locationsCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
