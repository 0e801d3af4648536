package test

import (
	"github.com/google/uuid"
)

// HasherStub hashes passwords with a deterministic marker.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a recognizable non-plaintext value.
func (s HasherStub) Hash(password string) (string, error) {
	if s.HashFn != nil {
		return s.HashFn(password)
	}
	return "hashed:" + password, nil
}

// Compare accepts passwords hashed by Hash.
func (s HasherStub) Compare(hash, password string) error {
	if s.CompareFn != nil {
		return s.CompareFn(hash, password)
	}
	if hash == "hashed:"+password {
		return nil
	}
	return errMismatch
}

type mismatchError struct{}

func (mismatchError) Error() string { return "password mismatch" }

var errMismatch = mismatchError{}

// StrategyStub issues a constant token and parses any token to a fixed id.
type StrategyStub struct {
	IssueFn func(uuid.UUID) (string, error)
	ParseFn func(string) (uuid.UUID, error)
	ID      uuid.UUID
	Err     error
}

// IssueToken returns the configured token.
func (s StrategyStub) IssueToken(userID uuid.UUID) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	if s.Err != nil {
		return "", s.Err
	}
	return "token", nil
}

// ParseToken resolves any token to the configured id.
func (s StrategyStub) ParseToken(token string) (uuid.UUID, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return uuid.Nil, s.Err
	}
	return s.ID, nil
}

// Name identifies the stub strategy.
func (s StrategyStub) Name() string { return "stub" }

// TokenParserStub satisfies the middleware token parser contract.
type TokenParserStub struct {
	ID  uuid.UUID
	Err error
}

// ParseToken returns the configured id or error.
func (s TokenParserStub) ParseToken(token string) (uuid.UUID, error) {
	if s.Err != nil {
		return uuid.Nil, s.Err
	}
	return s.ID, nil
}
