package tui

import (
	"github.com/workasana/workasana/internal/domain"
	"github.com/workasana/workasana/internal/usecase"
)

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgWorkspaceLoaded is sent when the collection snapshot has been loaded.
type MsgWorkspaceLoaded struct {
	Snapshot *domain.Snapshot
}

func (MsgWorkspaceLoaded) sealed() {}

// MsgReportsLoaded is sent when the report data has been loaded.
type MsgReportsLoaded struct {
	Reports *usecase.LoadReportsOutput
}

func (MsgReportsLoaded) sealed() {}

// MsgTaskCreated is sent when a new task is created.
type MsgTaskCreated struct {
	TaskID string
}

func (MsgTaskCreated) sealed() {}

// MsgTaskDeleted is sent when a task is deleted.
type MsgTaskDeleted struct {
	TaskID string
}

func (MsgTaskDeleted) sealed() {}

// MsgTaskStatusUpdated is sent when a task status is updated.
type MsgTaskStatusUpdated struct {
	Status domain.Status
	TaskID string
}

func (MsgTaskStatusUpdated) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the current error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}
