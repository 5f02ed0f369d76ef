package storage

import (
	"context"
	"sync"
	"time"
)

// In-memory implementations back the memory storage driver and the unit tests.
// They enforce the same conditional-write contracts as the DynamoDB versions:
// competitor updates are version-checked and QR consumption is guarded under
// the same lock that serializes writes.

type MemoryCompetitorStorage struct {
	mu          sync.RWMutex
	competitors map[string]*Competitor
}

func NewMemoryCompetitorStorage() *MemoryCompetitorStorage {
	return &MemoryCompetitorStorage{competitors: make(map[string]*Competitor)}
}

func (s *MemoryCompetitorStorage) Get(_ context.Context, id string) (*Competitor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	competitor, ok := s.competitors[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyCompetitor(competitor), nil
}

func (s *MemoryCompetitorStorage) GetAll(_ context.Context) ([]*Competitor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	competitors := make([]*Competitor, 0, len(s.competitors))
	for _, c := range s.competitors {
		competitors = append(competitors, copyCompetitor(c))
	}
	return competitors, nil
}

func (s *MemoryCompetitorStorage) Create(_ context.Context, competitor *Competitor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.competitors[competitor.ID]; ok {
		return ErrAlreadyExists
	}
	competitor.Version = 1
	if competitor.Votes == nil {
		competitor.Votes = []VoteEntry{}
	}
	s.competitors[competitor.ID] = copyCompetitor(competitor)
	return nil
}

func (s *MemoryCompetitorStorage) Update(_ context.Context, competitor *Competitor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.competitors[competitor.ID]
	if !ok {
		return ErrNotFound
	}
	if stored.Version != competitor.Version {
		return ErrConflict
	}
	competitor.Version++
	s.competitors[competitor.ID] = copyCompetitor(competitor)
	return nil
}

func (s *MemoryCompetitorStorage) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.competitors, id)
	return nil
}

func copyCompetitor(c *Competitor) *Competitor {
	clone := *c
	clone.Votes = append([]VoteEntry{}, c.Votes...)
	return &clone
}

type MemoryQRCodeStorage struct {
	mu      sync.RWMutex
	qrCodes map[string]*QRCode
}

func NewMemoryQRCodeStorage() *MemoryQRCodeStorage {
	return &MemoryQRCodeStorage{qrCodes: make(map[string]*QRCode)}
}

func (s *MemoryQRCodeStorage) Get(_ context.Context, code string) (*QRCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	qrCode, ok := s.qrCodes[code]
	if !ok {
		return nil, ErrNotFound
	}
	return copyQRCode(qrCode), nil
}

func (s *MemoryQRCodeStorage) GetAll(_ context.Context) ([]*QRCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	qrCodes := make([]*QRCode, 0, len(s.qrCodes))
	for _, qr := range s.qrCodes {
		qrCodes = append(qrCodes, copyQRCode(qr))
	}
	return qrCodes, nil
}

func (s *MemoryQRCodeStorage) Put(_ context.Context, qrCode *QRCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.qrCodes[qrCode.Code]; ok {
		return ErrAlreadyExists
	}
	s.qrCodes[qrCode.Code] = copyQRCode(qrCode)
	return nil
}

func (s *MemoryQRCodeStorage) Consume(_ context.Context, code string, usedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	qrCode, ok := s.qrCodes[code]
	if !ok {
		return ErrNotFound
	}
	if qrCode.IsUsed {
		return ErrAlreadyUsed
	}
	if usedAt.After(qrCode.ExpiresAt) {
		return ErrExpired
	}
	qrCode.IsUsed = true
	usedAtCopy := usedAt
	qrCode.UsedAt = &usedAtCopy
	return nil
}

func (s *MemoryQRCodeStorage) Delete(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.qrCodes, code)
	return nil
}

func copyQRCode(qr *QRCode) *QRCode {
	clone := *qr
	if qr.UsedAt != nil {
		usedAt := *qr.UsedAt
		clone.UsedAt = &usedAt
	}
	return &clone
}

type MemoryJudgeStorage struct {
	mu     sync.RWMutex
	judges map[string]*Judge
}

func NewMemoryJudgeStorage() *MemoryJudgeStorage {
	return &MemoryJudgeStorage{judges: make(map[string]*Judge)}
}

func (s *MemoryJudgeStorage) Get(_ context.Context, id string) (*Judge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	judge, ok := s.judges[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *judge
	return &clone, nil
}

func (s *MemoryJudgeStorage) GetAll(_ context.Context) ([]*Judge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	judges := make([]*Judge, 0, len(s.judges))
	for _, j := range s.judges {
		clone := *j
		judges = append(judges, &clone)
	}
	return judges, nil
}

func (s *MemoryJudgeStorage) Create(_ context.Context, judge *Judge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.judges[judge.ID]; ok {
		return ErrAlreadyExists
	}
	clone := *judge
	s.judges[judge.ID] = &clone
	return nil
}

func (s *MemoryJudgeStorage) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.judges, id)
	return nil
}
