package models

import (
	"errors"
	"strings"
	"time"

	"github.com/allbin/go-ka3005p"
	"github.com/allbin/go-ka3005p/internal/tui/components"
)

var errRawRequest = errors.New("raw expects a request, e.g. raw *IDN?")

// Dispatch runs one prompt line against the supply. "raw <request>"
// sends the request verbatim; anything else goes through
// ka3005p.ParseCommand.
func Dispatch(supply Supply, line string) components.EventMsg {
	line = strings.TrimSpace(line)
	msg := components.EventMsg{Timestamp: time.Now(), Request: line}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		msg.Err = errors.New("empty command")
		return msg
	}

	if strings.EqualFold(fields[0], "raw") {
		request := strings.TrimSpace(line[len(fields[0]):])
		if request == "" {
			msg.Err = errRawRequest
			return msg
		}
		msg.Request = request
		msg.Reply, msg.Err = supply.Exchange(request)
		return msg
	}

	cmd, err := ka3005p.ParseCommand(fields)
	if err != nil {
		msg.Err = err
		return msg
	}
	msg.Request = cmd.Encode()
	msg.Err = supply.Execute(cmd)
	return msg
}

// toggle flips one switch that the status byte reports
func toggle(supply Supply, name string, read func(ka3005p.Flags) ka3005p.Switch, build func(ka3005p.Switch) ka3005p.Command) components.EventMsg {
	msg := components.EventMsg{Timestamp: time.Now(), Request: "toggle " + name}
	next, err := supply.Toggle(read, build)
	if err != nil {
		msg.Err = err
		return msg
	}
	msg.Request = build(next).Encode()
	return msg
}

func execute(supply Supply, cmd ka3005p.Command) components.EventMsg {
	return components.EventMsg{
		Timestamp: time.Now(),
		Request:   cmd.Encode(),
		Err:       supply.Execute(cmd),
	}
}
