package commands

import (
	"context"
	"relaybot/internal/core/domain"
)

type mockDirectory struct {
	commands     map[string]string
	groups       map[string]domain.CommandGroup
	commandsErr  error
	groupsErr    error
	setCmdCalls  int
	setGrpCalls  int
	setCmdErr    error
	setGroupsErr error
}

func (m *mockDirectory) Commands(_ context.Context) (map[string]string, error) {
	if m.commandsErr != nil {
		return nil, m.commandsErr
	}

	if m.commands == nil {
		return map[string]string{}, nil
	}

	return m.commands, nil
}

func (m *mockDirectory) SetCommands(_ context.Context, commands map[string]string) error {
	m.setCmdCalls++

	if m.setCmdErr != nil {
		return m.setCmdErr
	}

	m.commands = commands

	return nil
}

func (m *mockDirectory) Groups(_ context.Context) (map[string]domain.CommandGroup, error) {
	if m.groupsErr != nil {
		return nil, m.groupsErr
	}

	if m.groups == nil {
		return map[string]domain.CommandGroup{}, nil
	}

	return m.groups, nil
}

func (m *mockDirectory) SetGroups(_ context.Context, groups map[string]domain.CommandGroup) error {
	m.setGrpCalls++

	if m.setGroupsErr != nil {
		return m.setGroupsErr
	}

	m.groups = groups

	return nil
}

func (m *mockDirectory) Resolve(_ context.Context, command string) (string, bool, error) {
	url, ok := m.commands[command]

	return url, ok, nil
}

type mockReplier struct {
	replies   []string
	reactions []string
	err       error
}

func (m *mockReplier) Reply(_ context.Context, _ *domain.Message, text string) error {
	m.replies = append(m.replies, text)

	return m.err
}

func (m *mockReplier) React(_ context.Context, _ *domain.Message, emoji string) error {
	m.reactions = append(m.reactions, emoji)

	return m.err
}

type mockScheduler struct {
	started  []string
	canceled []string
}

func (m *mockScheduler) Start(groupID string) {
	m.started = append(m.started, groupID)
}

func (m *mockScheduler) Cancel(groupID string) {
	m.canceled = append(m.canceled, groupID)
}

func testMessage() *domain.Message {
	return &domain.Message{
		ID:        "900000000000000001",
		ChannelID: "800000000000000001",
		Author:    domain.Author{ID: "700000000000000001", Username: "unit"},
	}
}

func invocation(command, arguments string) *domain.Invocation {
	return &domain.Invocation{Command: command, Arguments: arguments, Internal: true}
}
