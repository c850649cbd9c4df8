package domain

import "net/url"

// Query parameter keys recognized by the view state codec. The "project"
// and "team" keys double as the selected-parent marker on their views.
const (
	ParamOwner   = "owner"
	ParamProject = "project"
	ParamTeam    = "team"
	ParamStatus  = "status"
	ParamTags    = "tags"
)

// Values encodes the non-empty criteria as URL query parameters.
// Unset criteria are omitted entirely.
func (c Criteria) Values() url.Values {
	params := url.Values{}
	set := func(key, value string) {
		if value != "" {
			params.Set(key, value)
		}
	}
	set(ParamOwner, c.Owner)
	set(ParamProject, c.Project)
	set(ParamTeam, c.Team)
	set(ParamStatus, c.Status)
	set(ParamTags, c.Tags)
	return params
}

// ParseCriteria reconstructs criteria from URL query parameters.
// Unrecognized keys are ignored, not rejected.
func ParseCriteria(params url.Values) Criteria {
	return Criteria{
		Owner:   params.Get(ParamOwner),
		Project: params.Get(ParamProject),
		Team:    params.Get(ParamTeam),
		Status:  params.Get(ParamStatus),
		Tags:    params.Get(ParamTags),
	}
}

// EncodeViewQuery builds the shareable query string for a view: all
// non-empty criteria plus the selected parent ID under parentKey. With no
// selected parent the query is empty, regardless of criteria.
func EncodeViewQuery(c Criteria, parentKey, parentID string) string {
	if parentID == "" {
		return ""
	}
	params := c.Values()
	params.Set(parentKey, parentID)
	return params.Encode()
}

// DecodeViewQuery parses a shareable query string into criteria and the
// selected parent ID under parentKey. The parent key is cleared from the
// criteria so selection and filters stay independent.
func DecodeViewQuery(query, parentKey string) (Criteria, string, error) {
	params, err := url.ParseQuery(query)
	if err != nil {
		return Criteria{}, "", err
	}
	parentID := params.Get(parentKey)
	c := ParseCriteria(params)
	switch parentKey {
	case ParamProject:
		c.Project = ""
	case ParamTeam:
		c.Team = ""
	}
	return c, parentID, nil
}
