package events

import (
	"encoding/json"
	"time"
)

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

type Action string

// Event announces one entity mutation. Consumers fetch the full record from
// the backend themselves; the event carries only identity.
type Event struct {
	Entity    string    `json:"entity"`
	Action    Action    `json:"action"`
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewEvent(entity string, action Action, id int64) Event {
	return Event{Entity: entity, Action: action, ID: id, Timestamp: time.Now()}
}

func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func EventFromJSON(data []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return Event{}, err
	}
	return e, nil
}
