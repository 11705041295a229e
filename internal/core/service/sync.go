package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"relaybot/internal/core/domain"
	"relaybot/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

// GroupSyncer refreshes a command group from its manifest URL. Each
// successful run fully replaces the group's command list and reports the
// instant the manifest wants to be fetched next.
type GroupSyncer struct {
	directory port.Directory
	getter    port.Getter
}

func NewGroupSyncer(directory port.Directory, getter port.Getter) *GroupSyncer {
	return &GroupSyncer{directory: directory, getter: getter}
}

func (s *GroupSyncer) Sync(ctx context.Context, groupID string) (time.Time, error) {
	next, err := s.sync(ctx, groupID)
	if err != nil {
		return time.Time{}, &domain.SyncError{GroupID: groupID, Err: err}
	}

	return next, nil
}

func (s *GroupSyncer) sync(ctx context.Context, groupID string) (time.Time, error) {
	groups, err := s.directory.Groups(ctx)
	if err != nil {
		return time.Time{}, err
	}

	group, ok := groups[groupID]
	if !ok {
		return time.Time{}, domain.ErrUnknownGroup
	}

	l := log.With().Str("groupId", groupID).Str("url", group.URL).Logger()
	l.Info().Msg("fetching commands from group")

	body, err := s.getter.Get(ctx, group.URL)
	if err != nil {
		return time.Time{}, fmt.Errorf("fetching manifest: %w", err)
	}

	mf, err := decodeManifest(body)
	if err != nil {
		return time.Time{}, err
	}

	base, err := url.Parse(group.URL)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing group URL: %w", err)
	}

	commands := make([]domain.GroupCommand, len(mf.Commands))

	for i, c := range mf.Commands {
		ref, err := url.Parse(c.URL)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing URL of command %q: %w", c.Name, err)
		}

		resolved := base.ResolveReference(ref)

		// normalize a bare-host URL to carry an explicit root path
		if resolved.Host != "" && resolved.Path == "" {
			resolved.Path = "/"
		}

		commands[i] = domain.GroupCommand{
			Name: c.Name,
			URL:  resolved.String(),
		}
	}

	group.Commands = commands
	groups[groupID] = group

	if err := s.directory.SetGroups(ctx, groups); err != nil {
		return time.Time{}, err
	}

	l.Info().Int("commands", len(commands)).Msg("added commands for group")

	return mf.NextFetchDate, nil
}

type manifest struct {
	NextFetchDate time.Time
	Commands      []domain.GroupCommand
}

// decodeManifest validates the manifest body against the required shape
// and collects a diagnostic for every offending field instead of stopping
// at the first one. Extra fields are ignored.
func decodeManifest(body []byte) (*manifest, error) {
	var raw struct {
		NextFetchDate json.RawMessage `json:"nextFetchDate"`
		Commands      json.RawMessage `json:"commands"`
	}

	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &domain.SchemaError{Issues: []domain.FieldIssue{
			{Field: "(root)", Reason: "is not a JSON object"},
		}}
	}

	var issues []domain.FieldIssue
	var m manifest

	switch {
	case raw.NextFetchDate == nil:
		issues = append(issues, domain.FieldIssue{Field: "nextFetchDate", Reason: "is required"})
	default:
		var dateStr string
		if err := json.Unmarshal(raw.NextFetchDate, &dateStr); err != nil {
			issues = append(issues, domain.FieldIssue{Field: "nextFetchDate", Reason: "must be a string"})
			break
		}

		next, err := time.Parse(time.RFC3339, dateStr)
		if err != nil {
			issues = append(issues, domain.FieldIssue{Field: "nextFetchDate", Reason: "must be an ISO-8601 date-time"})
			break
		}

		m.NextFetchDate = next
	}

	switch {
	case raw.Commands == nil:
		issues = append(issues, domain.FieldIssue{Field: "commands", Reason: "is required"})
	default:
		var items []json.RawMessage
		if err := json.Unmarshal(raw.Commands, &items); err != nil {
			issues = append(issues, domain.FieldIssue{Field: "commands", Reason: "must be an array"})
			break
		}

		for i, item := range items {
			var fields map[string]json.RawMessage
			if err := json.Unmarshal(item, &fields); err != nil {
				issues = append(issues, domain.FieldIssue{
					Field:  fmt.Sprintf("commands[%d]", i),
					Reason: "must be an object",
				})
				continue
			}

			name, nameIssue := stringField(fields, fmt.Sprintf("commands[%d].name", i), "name")
			cmdURL, urlIssue := stringField(fields, fmt.Sprintf("commands[%d].url", i), "url")

			if nameIssue != nil {
				issues = append(issues, *nameIssue)
			}

			if urlIssue != nil {
				issues = append(issues, *urlIssue)
			}

			if nameIssue == nil && urlIssue == nil {
				m.Commands = append(m.Commands, domain.GroupCommand{Name: name, URL: cmdURL})
			}
		}
	}

	if len(issues) > 0 {
		return nil, &domain.SchemaError{Issues: issues}
	}

	return &m, nil
}

func stringField(fields map[string]json.RawMessage, path, key string) (string, *domain.FieldIssue) {
	raw, ok := fields[key]
	if !ok {
		return "", &domain.FieldIssue{Field: path, Reason: "is required"}
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", &domain.FieldIssue{Field: path, Reason: "must be a string"}
	}

	return value, nil
}
