// Package mqtt provides the relay's optional MQTT event bus.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Publishing action events with a configured QoS
//   - Last Will and Testament (LWT) for offline detection
//   - Connection health monitoring
//
// # Architecture
//
// The relay only publishes. Each dispatched action becomes one JSON message
// on friendshiplights/event/action/{action}. Home automation listeners
// (Node-RED, Home Assistant) subscribe to react to a signal without polling.
//
//	Relay → MQTT Broker → Listeners
//
// Online and offline status is published, retained, to
// friendshiplights/system/status.
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	topic := mqtt.Topics{}.ActionEvent("all_off")
//	err = client.PublishJSON(topic, event, false)
package mqtt
