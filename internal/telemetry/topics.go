package telemetry

import (
	"fmt"
	"strings"
	"time"

	"github.com/allbin/go-ka3005p"
)

// Availability payloads, retained on the availability topic
const (
	PayloadOnline  = "online"
	PayloadOffline = "offline"
)

// Topics builds the topic tree under one prefix:
//
//	<prefix>/availability   online | offline (retained, LWT)
//	<prefix>/status         JSON status snapshot
//	<prefix>/set/<verb>     inbound commands, payload is the argument
type Topics struct {
	Prefix string
}

func (t Topics) Availability() string { return t.Prefix + "/availability" }
func (t Topics) Status() string       { return t.Prefix + "/status" }
func (t Topics) SetFilter() string    { return t.Prefix + "/set/+" }

// Verb extracts the command verb from a /set/<verb> topic
func (t Topics) Verb(topic string) (string, bool) {
	verb, ok := strings.CutPrefix(topic, t.Prefix+"/set/")
	if !ok || verb == "" || strings.Contains(verb, "/") {
		return "", false
	}
	return verb, true
}

// StatusPayload is the JSON document published on the status topic
type StatusPayload struct {
	Timestamp time.Time `json:"timestamp"`
	ka3005p.Status
}

// Supply is the part of a device the bridge drives. It must be safe
// for concurrent use: broker callbacks arrive on paho's goroutines.
type Supply interface {
	Status() (ka3005p.Status, error)
	Execute(cmd ka3005p.Command) error
}

// HandleSet turns an inbound /set/<verb> message into a command and
// runs it. The payload holds the argument, e.g. "on" or "12.5".
func HandleSet(supply Supply, topics Topics, topic string, payload []byte) (ka3005p.Command, error) {
	verb, ok := topics.Verb(topic)
	if !ok {
		return nil, fmt.Errorf("not a command topic: %s", topic)
	}

	fields := append([]string{verb}, strings.Fields(string(payload))...)
	cmd, err := ka3005p.ParseCommand(fields)
	if err != nil {
		return nil, err
	}
	if err := supply.Execute(cmd); err != nil {
		return cmd, err
	}
	return cmd, nil
}
