package bot_dashboard

import (
	"fmt"
	"github.com/StacyJ1201/LRSBacketest/bot_dashboard/ui"
	"github.com/StacyJ1201/LRSBacketest/helpers"
	"github.com/StacyJ1201/LRSBacketest/models"
	"github.com/StacyJ1201/LRSBacketest/providers"
	"github.com/StacyJ1201/LRSBacketest/services"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	str2duration "github.com/xhit/go-str2duration/v2"
	"os"
	"time"
)

type Dashboard struct {
}

func init() {
	cwd, _ := os.Getwd()
	_ = godotenv.Load(cwd + "/conf.env")
}

// Run starts the terminal dashboard: the live signal re-displayed against
// freshly fetched prices, refreshed on a timer.
func (d *Dashboard) Run(c *cli.Context) error {
	provider, err := providers.ProviderFactory(helpers.StringSetting(c, "provider", "provider", "yahoo"))
	if err != nil {
		return err
	}

	policyName := helpers.StringSetting(c, "contribution-policy", "contributionPolicy", "none")
	policy, err := models.ContributionPolicyFactory(policyName)
	if err != nil {
		return err
	}

	refresh := 5 * time.Minute
	if refreshString := helpers.StringSetting(c, "refresh", "refreshInterval", ""); refreshString != "" {
		parsed, err := str2duration.ParseDuration(refreshString)
		if err != nil {
			return fmt.Errorf("bad refresh interval %q: %w", refreshString, err)
		}
		if parsed <= 0 {
			return fmt.Errorf("refresh interval %q must be positive", refreshString)
		}
		refresh = parsed
	}

	userInterface := ui.UserInterface{
		SignalService:    services.NewSignalService(provider, services.NewBacktestService()),
		UnderlyingSymbol: helpers.StringSetting(c, "underlying", "underlyingSymbol", "QQQ"),
		LeveredSymbol:    helpers.StringSetting(c, "levered", "leveredSymbol", "TQQQ"),
		HistoryDays:      helpers.IntSetting(c, "history-days", "historyDays", 2500),
		Refresh:          refresh,
		Config: services.BacktestConfig{
			Window:             helpers.IntSetting(c, "window", "smaWindow", 200),
			BuyBuffer:          helpers.FloatSetting(c, "buy-buffer", "buyBuffer", 0.01),
			SellBuffer:         helpers.FloatSetting(c, "sell-buffer", "sellBuffer", 0.01),
			InitialCash:        helpers.FloatSetting(c, "initial-cash", "initialCash", 10000),
			Contribution:       helpers.FloatSetting(c, "contribution", "contribution", 0),
			ContributionPolicy: policy,
		},
	}

	helpers.Logger.Infoln("🖥️ Dashboard started")
	return userInterface.Run()
}
