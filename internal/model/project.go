// Package model defines core data structures for GitLab projects and groups
package model

import "strings"

// Project represents a GitLab project as returned by a project search.
// SharedWith holds the names of groups the project is already shared with,
// in the order the API returned them. Projects are never mutated locally.
type Project struct {
	ID         int      // Project ID
	Name       string   // Project name (e.g., "payment-gateway")
	Namespace  string   // Namespace name (e.g., "backend")
	SharedWith []string // Names of groups already sharing this project
}

// SharedWithDisplay returns the shared-group names joined for table display.
// Returns an empty string when the project is not shared with any group.
func (p Project) SharedWithDisplay() string {
	return strings.Join(p.SharedWith, ", ")
}

// Group represents a GitLab group as returned by a group search
type Group struct {
	ID   int    // Group ID
	Name string // Group name
}
