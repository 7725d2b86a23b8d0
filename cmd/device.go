/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/allbin/go-ka3005p"
	"github.com/allbin/go-ka3005p/internal/shared"
	"github.com/spf13/viper"
)

const defaultReadTimeout = ka3005p.DefaultReadTimeout

// devicePath returns --device, or the discovered supply
func devicePath() (string, error) {
	if path := viper.GetString("device"); path != "" {
		return path, nil
	}
	path, err := ka3005p.FindDevice()
	if err != nil {
		if errors.Is(err, ka3005p.ErrNoDevice) {
			return "", fmt.Errorf("%w (is it plugged in? try 'ka3005p list --all')", err)
		}
		return "", fmt.Errorf("%w; pick one with --device", err)
	}
	return path, nil
}

func deviceOptions(log *stderrLogger) []ka3005p.Option {
	return []ka3005p.Option{
		ka3005p.WithReadTimeout(viper.GetDuration("timeout")),
		ka3005p.WithSetPoints(viper.GetBool("set-points")),
		ka3005p.WithLogger(log),
	}
}

// openDevice opens the configured supply. The caller must Close it.
func openDevice() (*ka3005p.Device, string, error) {
	return openDeviceWith(newLogger())
}

func openDeviceWith(log *stderrLogger) (*ka3005p.Device, string, error) {
	path, err := devicePath()
	if err != nil {
		return nil, "", err
	}
	dev, err := ka3005p.Open(path, deviceOptions(log)...)
	if err != nil {
		return nil, "", err
	}
	return dev, path, nil
}

// openShared opens the supply for commands that touch it from several
// goroutines
func openShared(log *stderrLogger) (*shared.Device, error) {
	dev, path, err := openDeviceWith(log)
	if err != nil {
		return nil, err
	}
	return shared.Wrap(dev, path), nil
}

// withDevice opens the supply, runs fn and closes it
func withDevice(fn func(*ka3005p.Device) error) error {
	dev, _, err := openDevice()
	if err != nil {
		return err
	}
	defer dev.Close()
	return fn(dev)
}

// exitOnError prints err and exits 1, the way every command reports failure
func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
