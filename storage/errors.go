package storage

import "errors"

var ErrNotFound = errors.New("item not found in storage")
var ErrAlreadyExists = errors.New("item with the same key already exists")

// ErrConflict signals a lost optimistic-concurrency race: another write landed
// between the read and the conditional write. Callers retry the whole
// read-modify-write sequence.
var ErrConflict = errors.New("conflicting concurrent write")

// ErrAlreadyUsed and ErrExpired are returned by QRCodeStorage.Consume when the
// conditional update finds the code no longer consumable.
var ErrAlreadyUsed = errors.New("code already used")
var ErrExpired = errors.New("code expired")
