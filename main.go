package main

import (
	"os"

	"github.com/alapierre/go-paytrail-client/paytrail"
	"github.com/alapierre/go-paytrail-client/paytrail/config"
	"github.com/alapierre/go-paytrail-client/paytrail/metrics"
	"github.com/alapierre/go-paytrail-client/paytrail/util"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logger = logrus.WithField("component", "paytrail.cli")

var (
	configPath  string
	verbose     bool
	showMetrics bool

	registry = prometheus.NewRegistry()
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "paytrail",
		Short: "Paytrail payment API client",
		Long: `Query the Paytrail API with merchant credentials taken from a config file,
the environment or a .env file in the working directory.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			if verbose || util.DebugEnabled() {
				logrus.SetLevel(logrus.DebugLevel)
			}
			logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if showMetrics {
				dumpMetrics()
			}
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file (default: $PAYTRAIL_CONFIG, else environment only)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&showMetrics, "metrics", false, "Log request metrics when the command finishes")

	root.AddCommand(
		newProvidersCommand(),
		newGroupedProvidersCommand(),
		newStatusCommand(),
		newSettlementsCommand(),
		newActivateInvoiceCommand(),
		newSignCommand(),
		newVerifyCallbackCommand(),
		newQrCommand(),
	)

	return root
}

// loadConfig reads --config, falling back to PAYTRAIL_CONFIG.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = util.GetEnvOrDefault("PAYTRAIL_CONFIG", "")
	}
	return config.Load(path)
}

func newClient() (*paytrail.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	m := metrics.New("cli", registry)
	return paytrail.NewClientFromConfig(cfg, paytrail.WithTransportMiddleware(m.Wrap))
}

func dumpMetrics() {
	families, err := registry.Gather()
	if err != nil {
		logger.WithError(err).Warn("can't gather metrics")
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fields := logrus.Fields{}
			for _, l := range m.GetLabel() {
				fields[l.GetName()] = l.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				fields["value"] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				fields["value"] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				fields["count"] = m.GetHistogram().GetSampleCount()
				fields["sum"] = m.GetHistogram().GetSampleSum()
			}
			logger.WithFields(fields).Info(mf.GetName())
		}
	}
}
