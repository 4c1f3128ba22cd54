package services

import "errors"

// Duel operation errors surfaced to handlers. None of them are retried by
// the core; retry policy belongs to the client.
var (
	ErrDuelNotFound      = errors.New("duel not found")
	ErrSelfChallenge     = errors.New("challenger and opponent must differ")
	ErrInvalidWordCount  = errors.New("word count out of range")
	ErrInsufficientWords = errors.New("not enough words in vocabulary")
	ErrUnauthorized      = errors.New("actor is not allowed to perform this transition")
	ErrExpired           = errors.New("challenge expired")
	ErrNotActive         = errors.New("duel is not active")
	ErrInvalidWordIndex  = errors.New("word index out of range")
	ErrDuplicateResponse = errors.New("word already answered")
)
