package model

import "fmt"

// ErrorKind classifies repository failures.
type ErrorKind string

// Available ErrorKind values.
const (
	KindInvalidReference            ErrorKind = "invalid reference"
	KindAmbiguousOrMissingReference ErrorKind = "unresolvable reference"
	KindWrongObjectKind             ErrorKind = "not a commit"
	KindBranchNotFound              ErrorKind = "branch not found"
	KindEmptyBranch                 ErrorKind = "empty branch"
	KindDiffFailure                 ErrorKind = "diff failure"
	KindRepositoryUnavailable       ErrorKind = "repository unavailable"
)

// Sentinels for errors.Is. They match any GitError of the same kind.
var (
	ErrInvalidReference            = &GitError{Kind: KindInvalidReference}
	ErrAmbiguousOrMissingReference = &GitError{Kind: KindAmbiguousOrMissingReference}
	ErrWrongObjectKind             = &GitError{Kind: KindWrongObjectKind}
	ErrBranchNotFound              = &GitError{Kind: KindBranchNotFound}
	ErrEmptyBranch                 = &GitError{Kind: KindEmptyBranch}
	ErrDiffFailure                 = &GitError{Kind: KindDiffFailure}
	ErrRepositoryUnavailable       = &GitError{Kind: KindRepositoryUnavailable}
)

// GitError is returned by every repository operation.
type GitError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// NewGitError builds a GitError with an optional cause.
func NewGitError(kind ErrorKind, message string, cause error) *GitError {
	return &GitError{Kind: kind, Message: message, Err: cause}
}

func (e *GitError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}

	if e.Err == nil {
		return msg
	}

	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *GitError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// Is matches sentinels by kind.
func (e *GitError) Is(target error) bool {
	t, ok := target.(*GitError)
	if !ok || e == nil || t == nil {
		return false
	}

	if t.Message != "" || t.Err != nil {
		return e == t
	}

	return e.Kind == t.Kind
}
