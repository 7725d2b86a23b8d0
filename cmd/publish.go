/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/allbin/go-ka3005p/internal/telemetry"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Bridge the supply to an MQTT broker",
	Long: `Publish the supply's status as JSON to <prefix>/status on every interval
and accept commands on <prefix>/set/<verb>, where the payload is the
argument (e.g. ka3005p/set/voltage with payload "5.0", or
ka3005p/set/power with payload "on").

<prefix>/availability carries a retained "online"/"offline" marker; the
broker publishes "offline" if the bridge drops.

Broker settings come from flags, the mqtt section of the config file or
KA3005P_MQTT_* variables.

Examples:
  ka3005p publish
  ka3005p publish --broker tcp://broker.lan:1883 --prefix lab/psu1
  KA3005P_MQTT_PASSWORD=secret ka3005p publish --username lab`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(runPublish(mqttConfig()))
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)

	defaults := telemetry.DefaultConfig()
	flags := publishCmd.Flags()
	flags.String("broker", defaults.Broker, "Broker URL")
	flags.String("client-id", defaults.ClientID, "MQTT client identifier")
	flags.String("username", "", "Broker username")
	flags.String("password", "", "Broker password")
	flags.String("prefix", defaults.Prefix, "Topic prefix")
	flags.Uint8("qos", defaults.QoS, "QoS for published messages (0-2)")
	flags.Duration("interval", defaults.Interval, "Status publishing interval")
	flags.Duration("keepalive", defaults.KeepAlive, "Broker keepalive")

	for _, name := range []string{"broker", "client-id", "username", "password", "prefix", "qos", "interval", "keepalive"} {
		viper.BindPFlag("mqtt."+name, flags.Lookup(name))
	}
}

func mqttConfig() telemetry.Config {
	cfg := telemetry.DefaultConfig()
	cfg.Broker = viper.GetString("mqtt.broker")
	cfg.ClientID = viper.GetString("mqtt.client-id")
	cfg.Username = viper.GetString("mqtt.username")
	cfg.Password = viper.GetString("mqtt.password")
	cfg.Prefix = viper.GetString("mqtt.prefix")
	cfg.QoS = byte(viper.GetUint("mqtt.qos"))
	cfg.Interval = viper.GetDuration("mqtt.interval")
	cfg.KeepAlive = viper.GetDuration("mqtt.keepalive")
	return cfg
}

func runPublish(cfg telemetry.Config) error {
	if cfg.QoS > 2 {
		return fmt.Errorf("qos must be 0, 1 or 2, got %d", cfg.QoS)
	}
	if cfg.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", cfg.Interval)
	}

	log := newLogger()
	dev, err := openShared(log)
	if err != nil {
		return err
	}
	defer dev.Close()

	ctx, cancel := signalContext()
	defer cancel()

	bridge := telemetry.NewBridge(cfg, dev, log)
	if err := bridge.Connect(ctx); err != nil {
		return err
	}
	fmt.Printf("Publishing %s to %s under %q (Ctrl+C to stop)\n", dev.Path(), cfg.Broker, cfg.Prefix)
	return bridge.Run(ctx)
}
