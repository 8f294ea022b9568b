package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/transport/http"

	"github.com/k-f-/agentic-dev-standards/internal/logging"
)

// SyncAction describes what Sync ended up doing to the mirror.
type SyncAction int

const (
	// ActionCloned means the mirror did not exist and was freshly cloned.
	ActionCloned SyncAction = iota
	// ActionUpdated means the mirror existed and new commits were fetched.
	ActionUpdated
	// ActionUpToDate means the mirror existed and the remote had nothing new.
	ActionUpToDate
	// ActionSkippedDirty means the mirror has local modifications and was
	// left untouched.
	ActionSkippedDirty
)

func (a SyncAction) String() string {
	switch a {
	case ActionCloned:
		return "cloned"
	case ActionUpdated:
		return "updated"
	case ActionUpToDate:
		return "up to date"
	case ActionSkippedDirty:
		return "skipped (local changes)"
	default:
		return "unknown"
	}
}

// SyncResult reports the outcome of a mirror sync.
type SyncResult struct {
	Action    SyncAction
	MirrorDir string
	RemoteURL string
}

// Mirror keeps a local clone of the standards repository in sync with its
// remote.
type Mirror struct {
	dir         string
	remoteURL   string
	branch      string
	credentials *CredentialManager
	logger      *logging.AppLogger
}

// NewMirror creates a mirror manager for the given local directory and
// remote URL. branch may be empty to track the remote default branch.
func NewMirror(dir, remoteURL, branch string, logger *logging.AppLogger) *Mirror {
	return &Mirror{
		dir:         dir,
		remoteURL:   remoteURL,
		branch:      branch,
		credentials: NewCredentialManager(),
		logger:      logger,
	}
}

// Sync brings the mirror up to date: clone when the directory does not hold
// a repository yet, fetch otherwise. A dirty worktree is never touched.
func (m *Mirror) Sync() (*SyncResult, error) {
	result := &SyncResult{MirrorDir: m.dir, RemoteURL: m.remoteURL}

	repo, err := git.PlainOpen(m.dir)
	if err == git.ErrRepositoryNotExists {
		m.logger.Info("No mirror found, cloning", "dir", m.dir, "remote", m.remoteURL)
		if err := m.cloneWithAuth(); err != nil {
			return nil, err
		}
		result.Action = ActionCloned
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open mirror at %s: %w", m.dir, err)
	}

	clean, err := worktreeClean(repo)
	if err != nil {
		return nil, err
	}
	if !clean {
		m.logger.Warn("Mirror has local modifications, skipping sync", "dir", m.dir)
		result.Action = ActionSkippedDirty
		return result, nil
	}

	updated, err := m.fetchWithAuth(repo)
	if err != nil {
		return nil, err
	}
	if updated {
		result.Action = ActionUpdated
	} else {
		result.Action = ActionUpToDate
	}
	return result, nil
}

// worktreeClean reports whether the repository has no uncommitted changes.
func worktreeClean(repo *git.Repository) (bool, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to access mirror worktree: %w", err)
	}
	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to check mirror status: %w", err)
	}
	return status.IsClean(), nil
}

// cloneWithAuth clones the remote, trying public access first and retrying
// with the stored token only when the remote demands authentication.
func (m *Mirror) cloneWithAuth() error {
	if err := m.clone(nil); err != nil {
		if !isAuthenticationError(err) {
			return fmt.Errorf("failed to clone %s: %w", m.remoteURL, err)
		}
		auth, authErr := m.tokenAuth()
		if authErr != nil {
			return fmt.Errorf("repository requires authentication: %w", authErr)
		}
		m.logger.Debug("Public clone rejected, retrying with stored token")
		if err := m.clone(auth); err != nil {
			return fmt.Errorf("failed to clone %s with authentication: %w", m.remoteURL, err)
		}
	}
	return nil
}

func (m *Mirror) clone(auth *http.BasicAuth) error {
	if err := os.MkdirAll(filepath.Dir(m.dir), 0755); err != nil {
		return fmt.Errorf("failed to create mirror parent directory: %w", err)
	}

	opts := &git.CloneOptions{
		URL: m.remoteURL,
	}
	if auth != nil {
		opts.Auth = auth
	}
	if m.branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(m.branch)
		opts.SingleBranch = true
	}

	_, err := git.PlainClone(m.dir, opts)
	return err
}

// fetchWithAuth fetches from origin, public-first. Returns whether anything
// new arrived.
func (m *Mirror) fetchWithAuth(repo *git.Repository) (bool, error) {
	updated, err := m.fetch(repo, nil)
	if err == nil {
		return updated, nil
	}
	if !isAuthenticationError(err) {
		return false, fmt.Errorf("failed to fetch from %s: %w", m.remoteURL, err)
	}

	auth, authErr := m.tokenAuth()
	if authErr != nil {
		return false, fmt.Errorf("repository requires authentication: %w", authErr)
	}
	m.logger.Debug("Public fetch rejected, retrying with stored token")
	updated, err = m.fetch(repo, auth)
	if err != nil {
		return false, fmt.Errorf("failed to fetch from %s with authentication: %w", m.remoteURL, err)
	}
	return updated, nil
}

func (m *Mirror) fetch(repo *git.Repository, auth *http.BasicAuth) (bool, error) {
	remote, err := repo.Remote("origin")
	if err != nil {
		return false, fmt.Errorf("mirror has no origin remote: %w", err)
	}

	opts := &git.FetchOptions{Force: true}
	if auth != nil {
		opts.Auth = auth
	}

	err = remote.Fetch(opts)
	if err == git.NoErrAlreadyUpToDate {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	// Fast-forward the worktree to the fetched branch when one is pinned.
	// Failure here is not fatal: the fetched objects are already local.
	if m.branch != "" {
		if err := m.checkoutBranch(repo); err != nil {
			m.logger.Warn("Fetched but could not update worktree", "branch", m.branch, "error", err)
		}
	}
	return true, nil
}

func (m *Mirror) checkoutBranch(repo *git.Repository) error {
	worktree, err := repo.Worktree()
	if err != nil {
		return err
	}
	return worktree.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(m.branch),
		Force:  true,
	})
}

// tokenAuth builds BasicAuth from the stored PAT. GitHub accepts any
// username when the password is a token.
func (m *Mirror) tokenAuth() (*http.BasicAuth, error) {
	token, err := m.credentials.GetGitHubToken()
	if err != nil {
		return nil, err
	}
	return &http.BasicAuth{
		Username: "token",
		Password: token,
	}, nil
}

// isAuthenticationError recognizes transport errors that mean the remote
// wants credentials.
func isAuthenticationError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "authentication required") ||
		strings.Contains(msg, "authorization") ||
		strings.Contains(msg, "401") ||
		strings.Contains(msg, "403") ||
		strings.Contains(msg, "invalid credentials")
}
