package repositories

import "context"

// VersionControlRepository puts a freshly generated project under version control.
type VersionControlRepository interface {
	// InitRepository creates a repository in dir and commits every file in it.
	InitRepository(ctx context.Context, dir string) error
}
