package catalog

import (
	"sync"

	"github.com/go-json-experiment/json/jsontext"
)

const (
	CommandAdd    = "add"
	CommandUpdate = "update"
	CommandDelete = "delete"
)

// Command describes one mutation applied to the catalog.
type Command struct {
	Name      string         `json:"name"`
	Uuid      string         `json:"uuid"`
	Timestamp int64          `json:"timestamp"`
	BookId    int64          `json:"book_id"`
	Payload   jsontext.Value `json:"payload"`
}

// Journal receives every command once it has been applied.
type Journal interface {
	Persist(command *Command) error
}

// MemoryJournal keeps commands in memory for the lifetime of the process.
type MemoryJournal struct {
	mutex    sync.Mutex
	commands []*Command
}

func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{}
}

func (j *MemoryJournal) Persist(command *Command) error {
	j.mutex.Lock()
	j.commands = append(j.commands, command)
	j.mutex.Unlock()
	return nil
}

// Commands returns a copy of the persisted commands, oldest first.
func (j *MemoryJournal) Commands() []*Command {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return append([]*Command{}, j.commands...)
}
