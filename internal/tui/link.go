package tui

import (
	"net/url"
	"strings"

	"github.com/workasana/workasana/internal/domain"
)

// applyStateToLink recomputes the shareable link from the current criteria
// and parent selection. It runs after every filter or selection change; the
// guard keeps it from re-entering while a pasted link is being applied.
func (m *Model) applyStateToLink() {
	if m.syncingLink {
		return
	}
	m.syncingLink = true
	defer func() { m.syncingLink = false }()

	m.shareLink = domain.EncodeViewQuery(m.criteria, m.parentKey, m.parentID)
}

// applyLinkToState decodes a pasted link into the criteria and parent
// selection, then re-derives the canonical link from the new state. The
// value may be a full URL, a bare query string, or one with a leading
// question mark.
func (m *Model) applyLinkToState(link string) error {
	if m.syncingLink {
		return nil
	}
	m.syncingLink = true

	query := link
	if u, err := url.Parse(link); err == nil && u.RawQuery != "" {
		query = u.RawQuery
	}
	query = strings.TrimPrefix(query, "?")

	// A link carries its parent under the key of the view it was shared
	// from; probe project first, then team.
	criteria, parentID, err := domain.DecodeViewQuery(query, domain.ParamProject)
	parentKey := domain.ParamProject
	if err != nil {
		m.syncingLink = false
		return err
	}
	if parentID == "" {
		criteria, parentID, _ = domain.DecodeViewQuery(query, domain.ParamTeam)
		parentKey = domain.ParamTeam
	}

	m.criteria = criteria
	if parentID == "" {
		m.parentKey = ""
		m.parentID = ""
	} else {
		m.parentKey = parentKey
		m.parentID = parentID
	}

	m.syncingLink = false
	m.applyStateToLink()
	return nil
}

// selectParent records a parent selection and syncs the link. Selecting the
// same parent again deselects it; the criteria stay in place for the next
// selection, but the link goes back to empty because no parent anchors it.
func (m *Model) selectParent(key, id string) {
	if m.parentKey == key && m.parentID == id {
		m.parentKey = ""
		m.parentID = ""
	} else {
		m.parentKey = key
		m.parentID = id
	}
	m.applyStateToLink()
}
