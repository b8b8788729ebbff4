// dimbridge connects the dimmer to an MQTT broker: delay values published
// on the command topic are forwarded to the firmware over serial, and the
// firmware's reply is published on the status topic. This lets home
// automation set brightness without owning the serial port.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"dimmer/host/client"
)

var (
	device      = flag.String("device", "/dev/ttyACM0", "serial device path")
	baud        = flag.Int("baud", 115200, "baud rate")
	broker      = flag.String("broker", "tcp://localhost:1883", "MQTT broker URL")
	clientID    = flag.String("client-id", "dimbridge", "MQTT client ID")
	cmdTopic    = flag.String("topic", "home/dimmer/set", "topic carrying delay values")
	statusTopic = flag.String("status-topic", "home/dimmer/status", "topic for firmware replies")
)

func main() {
	flag.Parse()

	dim, err := client.Dial(*device, *baud)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dimbridge: %v\n", err)
		os.Exit(1)
	}
	defer dim.Close()

	opts := paho.NewClientOptions().
		AddBroker(*broker).
		SetClientID(*clientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)

	mq := paho.NewClient(opts)
	token := mq.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		fmt.Fprintln(os.Stderr, "dimbridge: broker connection timeout")
		os.Exit(1)
	}
	if err := token.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "dimbridge: connect to broker: %v\n", err)
		os.Exit(1)
	}
	defer mq.Disconnect(250)

	// Serial access is serialized through this channel; the firmware
	// answers one command at a time.
	requests := make(chan string, 16)

	if token := mq.Subscribe(*cmdTopic, 1, func(_ paho.Client, msg paho.Message) {
		payload := strings.TrimSpace(string(msg.Payload()))
		if payload == "" {
			return
		}
		select {
		case requests <- payload:
		default:
			fmt.Fprintf(os.Stderr, "dimbridge: dropping %q, firmware busy\n", payload)
		}
	}); token.Wait() && token.Error() != nil {
		fmt.Fprintf(os.Stderr, "dimbridge: subscribe %s: %v\n", *cmdTopic, token.Error())
		os.Exit(1)
	}

	fmt.Printf("dimbridge: forwarding %s -> %s\n", *cmdTopic, *device)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sigs:
			fmt.Println("dimbridge: shutting down")
			return
		case payload := <-requests:
			forward(dim, mq, payload)
		}
	}
}

// forward sends one value to the firmware and publishes the outcome.
// Payloads are plain integers; the firmware clamps out-of-range values
// and persists the clamped result.
func forward(dim *client.Client, mq paho.Client, payload string) {
	reply, err := dim.Do(payload)
	status := reply
	if err != nil {
		status = "error: " + err.Error()
		fmt.Fprintf(os.Stderr, "dimbridge: %q: %v\n", payload, err)
	}

	token := mq.Publish(*statusTopic, 0, false, status)
	if !token.WaitTimeout(5 * time.Second) {
		fmt.Fprintln(os.Stderr, "dimbridge: status publish timeout")
		return
	}
	if err := token.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "dimbridge: status publish: %v\n", err)
	}
}
