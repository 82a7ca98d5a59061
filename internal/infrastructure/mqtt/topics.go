package mqtt

import "fmt"

// TopicPrefix is the root of every relay topic.
const TopicPrefix = "friendshiplights"

// Topics provides builders for relay MQTT topics.
//
//	topic := mqtt.Topics{}.ActionEvent("daughter_signal")
//	// Returns: "friendshiplights/event/action/daughter_signal"
type Topics struct{}

// ActionEvent returns the topic for events about one action.
func (Topics) ActionEvent(action string) string {
	return fmt.Sprintf("%s/event/action/%s", TopicPrefix, action)
}

// AllActionEvents returns the wildcard matching every action event.
func (Topics) AllActionEvents() string {
	return TopicPrefix + "/event/action/+"
}

// SystemStatus returns the retained online/offline status topic.
func (Topics) SystemStatus() string {
	return TopicPrefix + "/system/status"
}
