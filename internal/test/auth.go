package test

import (
	"github.com/zoombxu/surplus/internal/pkg/auth"
)

// StrategyStub implements auth.Strategy with overridable functions. By
// default tokens are "token:<subject>:<role>" and parse back verbatim.
type StrategyStub struct {
	IssueFn func(auth.Claims) (string, error)
	ParseFn func(string) (auth.Claims, error)

	Issued []auth.Claims
}

func (s *StrategyStub) IssueToken(claims auth.Claims) (string, error) {
	s.Issued = append(s.Issued, claims)
	if s.IssueFn != nil {
		return s.IssueFn(claims)
	}
	return "token:" + claims.Subject + ":" + claims.Role, nil
}

func (s *StrategyStub) ParseToken(token string) (auth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return auth.Claims{Subject: "09171234567", Role: auth.RoleCustomer, Name: "Test Customer"}, nil
}

func (s *StrategyStub) Name() string { return "stub" }

// HasherStub implements auth.PasswordHasher without real hashing.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

func (s *HasherStub) Hash(password string) (string, error) {
	if s.HashFn != nil {
		return s.HashFn(password)
	}
	return "hashed:" + password, nil
}

func (s *HasherStub) Compare(hash string, password string) error {
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
