package storage

import (
	"encoding/json"
	"sort"

	"github.com/wfahy/lifeops/internal/logger"
	"github.com/wfahy/lifeops/internal/models"
)

// Store is the typed record adapter over a KV backend. Reads absorb missing
// or malformed slots and hand back empty collections; writes log failures
// and carry on. The UI never sees a storage error, only stale or empty data.
type Store struct {
	kv KV
}

func New(kv KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) Init() error  { return s.kv.Init() }
func (s *Store) Close() error { return s.kv.Close() }
func (s *Store) Path() string { return s.kv.Path() }

// KV exposes the raw backend for diagnostics.
func (s *Store) KV() KV { return s.kv }

func loadRecords[T any](kv KV, key string, normalize func(T) T) []T {
	data, ok, err := kv.Get(key)
	if err != nil {
		logger.Error("Failed to read slot", "key", key, "error", err)
		return []T{}
	}
	if !ok {
		return []T{}
	}

	var raw []T
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn("Malformed slot contents, treating as empty", "key", key, "error", err)
		return []T{}
	}

	out := make([]T, 0, len(raw))
	for _, r := range raw {
		out = append(out, normalize(r))
	}
	return out
}

func saveRecords[T any](kv KV, key string, records []T) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		logger.Error("Failed to serialize slot", "key", key, "error", err)
		return
	}
	if err := kv.Set(key, data); err != nil {
		logger.Error("Failed to write slot", "key", key, "error", err)
	}
}

// Tasks loads the task collection for a profile (empty id for the shared
// board), defaulted and sorted oldest first.
func (s *Store) Tasks(profileID string) []models.Task {
	tasks := loadRecords(s.kv, Key(EntityTasks, profileID), models.Task.Normalize)
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].CreatedAt < tasks[j].CreatedAt })
	return tasks
}

func (s *Store) SaveTasks(profileID string, tasks []models.Task) {
	saveRecords(s.kv, Key(EntityTasks, profileID), tasks)
}

func (s *Store) Orders() []models.Order {
	orders := loadRecords(s.kv, Key(EntityOrders, ""), models.Order.Normalize)
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].CreatedAt < orders[j].CreatedAt })
	return orders
}

func (s *Store) SaveOrders(orders []models.Order) {
	saveRecords(s.kv, Key(EntityOrders, ""), orders)
}

func (s *Store) Reminders() []models.Reminder {
	reminders := loadRecords(s.kv, Key(EntityReminders, ""), models.Reminder.Normalize)
	sort.SliceStable(reminders, func(i, j int) bool { return reminders[i].CreatedAt < reminders[j].CreatedAt })
	return reminders
}

func (s *Store) SaveReminders(reminders []models.Reminder) {
	saveRecords(s.kv, Key(EntityReminders, ""), reminders)
}

// History loads saved daily logs sorted oldest to newest by date.
func (s *Store) History() []models.DailyLog {
	history := loadRecords(s.kv, Key(EntityHistory, ""), func(d models.DailyLog) models.DailyLog { return d })
	sort.SliceStable(history, func(i, j int) bool { return history[i].Date < history[j].Date })
	return history
}

func (s *Store) SaveHistory(history []models.DailyLog) {
	saveRecords(s.kv, Key(EntityHistory, ""), history)
}

// SaveDayToHistory replaces any existing entry with the same date, keeping
// at most one log per calendar day, and returns the updated history.
func (s *Store) SaveDayToHistory(entry models.DailyLog) []models.DailyLog {
	history := s.History()
	kept := history[:0]
	for _, h := range history {
		if h.Date != entry.Date {
			kept = append(kept, h)
		}
	}
	kept = append(kept, entry)
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Date < kept[j].Date })
	s.SaveHistory(kept)
	return kept
}

// Today loads the in-progress daily log. An absent or unreadable slot yields
// a fresh record dated defaultDate.
func (s *Store) Today(defaultDate string) models.DailyLog {
	data, ok, err := s.kv.Get(Key(EntityToday, ""))
	if err != nil {
		logger.Error("Failed to read today slot", "error", err)
		return models.DailyLog{Date: defaultDate}
	}
	if !ok {
		return models.DailyLog{Date: defaultDate}
	}
	var today models.DailyLog
	if err := json.Unmarshal(data, &today); err != nil {
		logger.Warn("Malformed today slot, starting fresh", "error", err)
		return models.DailyLog{Date: defaultDate}
	}
	if today.Date == "" {
		today.Date = defaultDate
	}
	return today
}

func (s *Store) SaveToday(today models.DailyLog) {
	data, err := json.MarshalIndent(today, "", "  ")
	if err != nil {
		logger.Error("Failed to serialize today slot", "error", err)
		return
	}
	if err := s.kv.Set(Key(EntityToday, ""), data); err != nil {
		logger.Error("Failed to write today slot", "error", err)
	}
}

func (s *Store) Profiles() []models.Profile {
	profiles := loadRecords(s.kv, Key(EntityProfiles, ""), models.Profile.Normalize)
	sort.SliceStable(profiles, func(i, j int) bool { return profiles[i].CreatedAt < profiles[j].CreatedAt })
	return profiles
}

func (s *Store) SaveProfiles(profiles []models.Profile) {
	saveRecords(s.kv, Key(EntityProfiles, ""), profiles)
}

// CurrentProfile returns the active-profile pointer, if one is set.
func (s *Store) CurrentProfile() (models.CurrentProfile, bool) {
	data, ok, err := s.kv.Get(Key(EntityCurrentProfile, ""))
	if err != nil {
		logger.Error("Failed to read current profile", "error", err)
		return models.CurrentProfile{}, false
	}
	if !ok {
		return models.CurrentProfile{}, false
	}
	var cur models.CurrentProfile
	if err := json.Unmarshal(data, &cur); err != nil {
		logger.Warn("Malformed current profile pointer", "error", err)
		return models.CurrentProfile{}, false
	}
	if cur.ID == "" && cur.Name == "" {
		return models.CurrentProfile{}, false
	}
	return cur, true
}

func (s *Store) SetCurrentProfile(p models.Profile) {
	cur := models.CurrentProfile{ID: p.ID, Name: p.Name}
	data, err := json.Marshal(cur)
	if err != nil {
		logger.Error("Failed to serialize current profile", "error", err)
		return
	}
	if err := s.kv.Set(Key(EntityCurrentProfile, ""), data); err != nil {
		logger.Error("Failed to write current profile", "error", err)
	}
}

func (s *Store) ClearCurrentProfile() {
	if err := s.kv.Delete(Key(EntityCurrentProfile, "")); err != nil {
		logger.Error("Failed to clear current profile", "error", err)
	}
}
