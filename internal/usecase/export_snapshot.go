package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/workasana/workasana/internal/domain"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	ExportFormatJSON = "json"
	ExportFormatYAML = "yaml"
)

// ExportSnapshotInput selects the output format.
type ExportSnapshotInput struct {
	Format string // json or yaml
}

// ExportSnapshotOutput contains the serialized snapshot.
type ExportSnapshotOutput struct {
	Data []byte
}

// exportedSnapshot is the serialization shape for exports.
type exportedSnapshot struct {
	Tasks    []*domain.Task    `json:"tasks" yaml:"tasks"`
	Projects []*domain.Project `json:"projects" yaml:"projects"`
	Teams    []*domain.Team    `json:"teams" yaml:"teams"`
	Users    []*domain.User    `json:"users" yaml:"users"`
}

// ExportSnapshot is the use case for dumping the loaded workspace for
// scripting.
type ExportSnapshot struct {
	workspace *LoadWorkspace
}

// NewExportSnapshot creates a new ExportSnapshot use case.
func NewExportSnapshot(workspace *LoadWorkspace) *ExportSnapshot {
	return &ExportSnapshot{workspace: workspace}
}

// Execute loads the workspace and serializes it.
func (uc *ExportSnapshot) Execute(ctx context.Context, in ExportSnapshotInput) (*ExportSnapshotOutput, error) {
	out, err := uc.workspace.Execute(ctx, LoadWorkspaceInput{})
	if err != nil {
		return nil, err
	}

	export := exportedSnapshot{
		Tasks:    out.Snapshot.Tasks,
		Projects: out.Snapshot.Projects,
		Teams:    out.Snapshot.Teams,
		Users:    out.Snapshot.Users,
	}

	switch in.Format {
	case "", ExportFormatYAML:
		data, err := yaml.Marshal(export)
		if err != nil {
			return nil, fmt.Errorf("encode snapshot: %w", err)
		}
		return &ExportSnapshotOutput{Data: data}, nil
	case ExportFormatJSON:
		data, err := json.MarshalIndent(export, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode snapshot: %w", err)
		}
		return &ExportSnapshotOutput{Data: data}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", in.Format)
	}
}
