package drafts

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-ProposalService/internal/domain"
)

// Store хранит авторитетную копию черновика для активных сессий.
// Одна запись на ключ (queryId, draftType); доступ потокобезопасен.
type Store struct {
	mu      sync.RWMutex
	records map[domain.DraftKey]*domain.DraftRecord
	clock   func() time.Time
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		records: make(map[domain.DraftKey]*domain.DraftRecord),
		clock:   time.Now,
	}
}

// Get возвращает копию записи по ключу
func (s *Store) Get(key domain.DraftKey) (*domain.DraftRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[key]
	if !ok {
		return nil, false
	}
	return record.Clone(), true
}

// Adopt принимает загруженную запись как авторитетную копию.
// Защита от устаревшего чтения: запись с версией ниже резидентной
// не затирает резидентную копию, возвращается false.
func (s *Store) Adopt(record *domain.DraftRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := record.Key()
	if resident, ok := s.records[key]; ok && resident.Version > record.Version {
		return false
	}

	s.records[key] = record.Clone()
	return true
}

// Apply атомарно сливает частичное обновление поверх резидентной копии.
// Отсутствующая запись материализуется с пустыми значениями по умолчанию.
// Версия увеличивается ровно на единицу за вызов, lastSaved обновляется.
// Возвращается копия слитой записи и признак изменения содержимого
// (без учета version и lastSaved).
func (s *Store) Apply(key domain.DraftKey, patch domain.DraftPatch) (*domain.DraftRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[key]
	if !ok {
		record = domain.NewDraftRecord(key.QueryID, key.DraftType)
		s.records[key] = record
	}

	before := record.Clone()

	patch.ApplyTo(record)
	record.Version++
	record.LastSaved = s.clock()

	return record.Clone(), !record.ContentEquals(before)
}
