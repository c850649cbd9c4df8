package domain

// Snapshot is the in-memory, per-view copy of the fetched collections.
// It lives for one view only: every successful reload replaces the whole
// snapshot, and a failed reload leaves the previous one untouched. There is
// deliberately no incremental merge; see the workspace loading use case.
type Snapshot struct {
	Tasks    []*Task
	Projects []*Project
	Teams    []*Team
	Users    []*User
}

// TaskByID resolves a task against the snapshot. Returns nil if absent.
func (s *Snapshot) TaskByID(id string) *Task {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// ProjectByID resolves a project against the snapshot. Returns nil if absent.
func (s *Snapshot) ProjectByID(id string) *Project {
	for _, p := range s.Projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// TeamByID resolves a team against the snapshot. Returns nil if absent.
func (s *Snapshot) TeamByID(id string) *Team {
	for _, t := range s.Teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// UserByID resolves a user against the snapshot. Returns nil if absent.
func (s *Snapshot) UserByID(id string) *User {
	for _, u := range s.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// ProjectName returns the project's name, or the ID itself when the
// project is not in the snapshot.
func (s *Snapshot) ProjectName(id string) string {
	if p := s.ProjectByID(id); p != nil {
		return p.Name
	}
	return id
}

// TeamName returns the team's name, or the ID itself when the team is not
// in the snapshot.
func (s *Snapshot) TeamName(id string) string {
	if t := s.TeamByID(id); t != nil {
		return t.Name
	}
	return id
}

// TasksForProject returns the project's tasks filtered by the criteria.
func (s *Snapshot) TasksForProject(projectID string, c Criteria) []*Task {
	c.Project = ""
	var out []*Task
	for _, t := range s.Tasks {
		if t.ProjectID == projectID && c.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// TasksForTeam returns the team's tasks filtered by the criteria.
func (s *Snapshot) TasksForTeam(teamID string, c Criteria) []*Task {
	c.Team = ""
	var out []*Task
	for _, t := range s.Tasks {
		if t.TeamID == teamID && c.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
