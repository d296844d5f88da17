package commands

import (
	"fmt"
	"net/http"

	"wallet-settings/internal/adapter/ipc"
	"wallet-settings/internal/core/domain"
	"wallet-settings/internal/core/ports"

	"github.com/spf13/cobra"
)

func localeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locale",
		Short: "Resolve the current country and print the fiat currency it maps to",
		RunE: func(cmd *cobra.Command, args []string) error {
			bus := newLocaleBus(&http.Client{Timeout: cfg.Locale.Timeout})

			country, err := bus.Send(cmd.Context(), ports.ChannelLocaleGet)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Country: %s\n", country)

			fiat, err := domain.LocalFiat(country)
			if err != nil {
				code, _ := domain.CurrencyForCountry(country)
				if code == "" {
					code = "unknown"
				}
				fmt.Fprintf(out, "Fiat: %s (unsupported, %s would be used)\n", code, domain.DefaultFiat)
				return nil
			}
			fmt.Fprintf(out, "Fiat: %s (%s %s)\n", fiat, fiat.Name(), fiat.Symbol())
			return nil
		},
	}
}

// newLocaleBus registers the locale-get handler: a fixed country when one
// is configured, GeoIP otherwise.
func newLocaleBus(httpClient ports.HTTPClient) *ipc.Bus {
	bus := ipc.NewBus()
	if cfg.Locale.Country != "" {
		bus.Handle(ports.ChannelLocaleGet, ipc.StaticLocale(cfg.Locale.Country))
	} else {
		bus.Handle(ports.ChannelLocaleGet, ipc.NewGeoIPLocale(httpClient, cfg.Locale.GeoIPURL).Country)
	}
	return bus
}
