package git

import (
	"context"
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cracgen/internal/domain/repositories"
)

const (
	initialCommitMessage = "Initial commit"
	defaultAuthorName    = "cracgen"
	defaultAuthorEmail   = "cracgen@localhost"
)

// VersionControlRepository initialises local git repositories with go-git,
// so no git binary is needed.
type VersionControlRepository struct {
	now func() time.Time
}

var _ repositories.VersionControlRepository = (*VersionControlRepository)(nil)

// NewVersionControlRepository creates a git backed version control repository.
func NewVersionControlRepository() *VersionControlRepository {
	return &VersionControlRepository{now: time.Now}
}

func (r *VersionControlRepository) InitRepository(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		return fmt.Errorf("failed to initialise git repository in %s: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}
	if err = worktree.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return fmt.Errorf("failed to stage generated files: %w", err)
	}

	hash, err := worktree.Commit(initialCommitMessage, &gogit.CommitOptions{
		Author: r.signature(repo),
	})
	if err != nil {
		return fmt.Errorf("failed to create initial commit: %w", err)
	}

	logger.Debugf("[git] Created initial commit %s in %s", hash.String()[:7], dir)
	return nil
}

// signature uses the user identity from the git configuration when one is
// set and falls back to the tool's own identity.
func (r *VersionControlRepository) signature(repo *gogit.Repository) *object.Signature {
	sig := &object.Signature{
		Name:  defaultAuthorName,
		Email: defaultAuthorEmail,
		When:  r.now(),
	}

	cfg, err := repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		return sig
	}
	if cfg.User.Name != "" {
		sig.Name = cfg.User.Name
	}
	if cfg.User.Email != "" {
		sig.Email = cfg.User.Email
	}
	return sig
}
