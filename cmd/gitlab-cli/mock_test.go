package main

import (
	"github.com/fuseraft/gitlab-cli/internal/access"
	"github.com/fuseraft/gitlab-cli/internal/model"
)

// shareCall records one ShareProject invocation
type shareCall struct {
	projectID int
	groupID   int
	level     access.Level
}

// mockGitLabClient is a mock implementation of gitlab.GitLabClient for
// testing. Every call is recorded so tests can assert which endpoints were
// (or were not) reached.
type mockGitLabClient struct {
	searchProjectsFunc func(string) ([]model.Project, error)
	searchGroupsFunc   func(string) ([]model.Group, error)
	shareProjectFunc   func(int, int, access.Level) error
	testConnectionFunc func() error

	projectSearches []string
	groupSearches   []string
	shareCalls      []shareCall
}

func (m *mockGitLabClient) SearchProjects(name string) ([]model.Project, error) {
	m.projectSearches = append(m.projectSearches, name)
	if m.searchProjectsFunc != nil {
		return m.searchProjectsFunc(name)
	}
	return nil, nil
}

func (m *mockGitLabClient) SearchGroups(name string) ([]model.Group, error) {
	m.groupSearches = append(m.groupSearches, name)
	if m.searchGroupsFunc != nil {
		return m.searchGroupsFunc(name)
	}
	return nil, nil
}

func (m *mockGitLabClient) ShareProject(projectID, groupID int, level access.Level) error {
	m.shareCalls = append(m.shareCalls, shareCall{projectID: projectID, groupID: groupID, level: level})
	if m.shareProjectFunc != nil {
		return m.shareProjectFunc(projectID, groupID, level)
	}
	return nil
}

func (m *mockGitLabClient) TestConnection() error {
	if m.testConnectionFunc != nil {
		return m.testConnectionFunc()
	}
	return nil
}

// fakePrompter replays canned answers and records every question asked
type fakePrompter struct {
	answers   []string
	questions []string
}

func (p *fakePrompter) Ask(question string) (string, error) {
	p.questions = append(p.questions, question)
	if len(p.answers) == 0 {
		return "", nil
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}
