package journal

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/julianstephens/healthlog/internal/models"
	"github.com/julianstephens/healthlog/internal/storage/storagetest"
)

func entry(mood, stress, health int, issues ...string) models.Entry {
	return models.Entry{
		Mood:         mood,
		Stress:       stress,
		HealthScore:  health,
		HealthIssues: issues,
		Time:         "4:05 PM",
	}
}

func TestKey(t *testing.T) {
	if got := Key("2024-03-15"); got != "health_2024-03-15" {
		t.Errorf("Key() = %q, want health_2024-03-15", got)
	}

	date, ok := DateFromKey("health_2024-03-15")
	if !ok || date != "2024-03-15" {
		t.Errorf("DateFromKey() = %q, %v", date, ok)
	}
	if _, ok := DateFromKey("settings_timezone"); ok {
		t.Error("DateFromKey(settings_timezone) ok = true, want false")
	}
}

func TestGetAbsent(t *testing.T) {
	store := NewStore(storagetest.NewMemory())
	log, ok, err := store.Get(context.Background(), "2024-03-15")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if ok || log != nil {
		t.Errorf("Get() = %v, %v, want absent", log, ok)
	}
}

func TestGetStoredNullIsAbsent(t *testing.T) {
	mem := storagetest.NewMemory()
	mem.Put(Key("2024-03-15"), "null")
	store := NewStore(mem)

	log, ok, err := store.Get(context.Background(), "2024-03-15")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if ok || log != nil {
		t.Errorf("Get() = %v, %v, want absent", log, ok)
	}

	if err := store.Append(context.Background(), "2024-03-15", entry(6, 4, 7)); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	log, ok, err = store.Get(context.Background(), "2024-03-15")
	if err != nil || !ok || len(log) != 1 {
		t.Errorf("Get() after Append = %v, %v, %v", log, ok, err)
	}
}

func TestAppendThenGet(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storagetest.NewMemory())

	var saved []models.Entry
	for i, e := range []models.Entry{
		entry(7, 3, 8),
		entry(2, 9, 4, "Headache"),
		entry(5, 5, 5, "Fatigue", "Eyes"),
	} {
		if err := store.Append(ctx, "2024-03-15", e); err != nil {
			t.Fatalf("Append(%d) error: %v", i, err)
		}
		saved = append(saved, e)

		log, ok, err := store.Get(ctx, "2024-03-15")
		if err != nil || !ok {
			t.Fatalf("Get() = %v, %v", ok, err)
		}
		if len(log) != len(saved) {
			t.Fatalf("len(log) = %d, want %d", len(log), len(saved))
		}
		last := log[len(log)-1]
		if last.Mood != e.Mood || last.Stress != e.Stress || last.HealthScore != e.HealthScore {
			t.Errorf("last entry = %+v, want %+v", last, e)
		}
		for j := range saved[:len(saved)-1] {
			if log[j].Mood != saved[j].Mood || log[j].Time != saved[j].Time {
				t.Errorf("entry %d changed after append: %+v", j, log[j])
			}
		}
	}
}

func TestAppendWritesContractFormat(t *testing.T) {
	mem := storagetest.NewMemory()
	store := NewStore(mem)

	e := models.Entry{
		Time:          "9:30 AM",
		Mood:          7,
		Stress:        3,
		StressReasons: "deadline",
		Fever:         "37.2",
		HealthBriefs:  "ok",
		HealthScore:   8,
	}
	if err := store.Append(context.Background(), "2024-03-15", e); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	raw, ok := mem.Raw("health_2024-03-15")
	if !ok {
		t.Fatal("value not stored under health_2024-03-15")
	}
	want := `[{"mood":7,"stress":3,"stressReasons":"deadline","fever":"37.2","healthBriefs":"ok","healthIssues":[],"healthScore":8,"time":"9:30 AM"}]`
	if raw != want {
		t.Errorf("stored value =\n%s\nwant\n%s", raw, want)
	}
}

func TestAppendRejectsInvalidDate(t *testing.T) {
	mem := storagetest.NewMemory()
	store := NewStore(mem)
	for _, date := range []string{"", "2024-3-15", "2024-02-30", "today"} {
		if err := store.Append(context.Background(), date, entry(5, 5, 5)); err == nil {
			t.Errorf("Append(%q) = nil, want error", date)
		}
	}
	keys, _ := mem.Keys(context.Background())
	if len(keys) != 0 {
		t.Errorf("keys after invalid appends = %v, want none", keys)
	}
}

func TestStorageErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")

	t.Run("get failure", func(t *testing.T) {
		mem := storagetest.NewMemory()
		mem.FailGet = func(string) error { return boom }
		_, _, err := NewStore(mem).Get(ctx, "2024-03-15")

		var se *StorageError
		if !errors.As(err, &se) {
			t.Fatalf("Get() error = %v, want *StorageError", err)
		}
		if se.Op != "get" || se.Date != "2024-03-15" || !errors.Is(err, boom) {
			t.Errorf("StorageError = %+v", se)
		}
	})

	t.Run("malformed value", func(t *testing.T) {
		mem := storagetest.NewMemory()
		mem.Put("health_2024-03-15", "{not json")
		_, _, err := NewStore(mem).Get(ctx, "2024-03-15")
		if !IsStorageError(err) {
			t.Errorf("Get() error = %v, want StorageError", err)
		}
	})

	t.Run("append write failure leaves log unchanged", func(t *testing.T) {
		mem := storagetest.NewMemory()
		store := NewStore(mem)
		if err := store.Append(ctx, "2024-03-15", entry(7, 3, 8)); err != nil {
			t.Fatalf("Append() error: %v", err)
		}
		before, _ := mem.Raw("health_2024-03-15")

		mem.FailSet = func(string) error { return boom }
		err := store.Append(ctx, "2024-03-15", entry(1, 1, 1))
		var se *StorageError
		if !errors.As(err, &se) || se.Op != "append" {
			t.Fatalf("Append() error = %v, want append StorageError", err)
		}
		after, _ := mem.Raw("health_2024-03-15")
		if before != after {
			t.Errorf("stored value changed after failed append")
		}
	})

	t.Run("append over malformed value", func(t *testing.T) {
		mem := storagetest.NewMemory()
		mem.Put("health_2024-03-15", "oops")
		err := NewStore(mem).Append(ctx, "2024-03-15", entry(5, 5, 5))
		if !IsStorageError(err) {
			t.Errorf("Append() error = %v, want StorageError", err)
		}
		if raw, _ := mem.Raw("health_2024-03-15"); raw != "oops" {
			t.Errorf("malformed value overwritten: %q", raw)
		}
	})

	t.Run("clear failure", func(t *testing.T) {
		mem := storagetest.NewMemory()
		mem.Put("health_2024-03-15", "[]")
		mem.FailRemove = boom
		n, err := NewStore(mem).ClearAll(ctx)
		if n != 0 || !IsStorageError(err) {
			t.Errorf("ClearAll() = %d, %v, want 0, StorageError", n, err)
		}
		if _, ok := mem.Raw("health_2024-03-15"); !ok {
			t.Error("data removed despite failure")
		}
	})

	t.Run("list failure", func(t *testing.T) {
		mem := storagetest.NewMemory()
		mem.FailKeys = boom
		if _, err := NewStore(mem).Dates(ctx); !IsStorageError(err) {
			t.Errorf("Dates() error = %v, want StorageError", err)
		}
	})
}

func TestStorageErrorMessage(t *testing.T) {
	err := &StorageError{Op: "get", Date: "2024-03-15", Err: errors.New("boom")}
	if got := err.Error(); got != "storage get 2024-03-15 failed: boom" {
		t.Errorf("Error() = %q", got)
	}
	err = &StorageError{Op: "clear", Err: errors.New("boom")}
	if got := err.Error(); got != "storage clear failed: boom" {
		t.Errorf("Error() = %q", got)
	}
	if IsStorageError(errors.New("plain")) || IsStorageError(nil) {
		t.Error("IsStorageError() = true for non-storage error")
	}
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	mem := storagetest.NewMemory()
	store := NewStore(mem)

	dates := []string{"2024-03-01", "2024-03-14", "2024-03-15"}
	for _, d := range dates {
		if err := store.Append(ctx, d, entry(5, 5, 5)); err != nil {
			t.Fatalf("Append(%s) error: %v", d, err)
		}
	}
	mem.Put("settings_window_days", "14")
	mem.Put("other_app_key", "keep")

	n, err := store.ClearAll(ctx)
	if err != nil {
		t.Fatalf("ClearAll() error: %v", err)
	}
	if n != len(dates) {
		t.Errorf("ClearAll() = %d, want %d", n, len(dates))
	}

	for _, d := range dates {
		if _, ok, err := store.Get(ctx, d); ok || err != nil {
			t.Errorf("Get(%s) after clear = %v, %v, want absent", d, ok, err)
		}
	}
	keys, _ := mem.Keys(ctx)
	if !reflect.DeepEqual(keys, []string{"other_app_key", "settings_window_days"}) {
		t.Errorf("remaining keys = %v", keys)
	}

	n, err = store.ClearAll(ctx)
	if n != 0 || err != nil {
		t.Errorf("second ClearAll() = %d, %v, want 0, nil", n, err)
	}
}

func TestDates(t *testing.T) {
	mem := storagetest.NewMemory()
	mem.Put("health_2024-03-15", "[]")
	mem.Put("health_2024-03-01", "[]")
	mem.Put("settings_timezone", "UTC")

	dates, err := NewStore(mem).Dates(context.Background())
	if err != nil {
		t.Fatalf("Dates() error: %v", err)
	}
	if !reflect.DeepEqual(dates, []string{"2024-03-01", "2024-03-15"}) {
		t.Errorf("Dates() = %v", dates)
	}
}

func TestDecode(t *testing.T) {
	log, err := Decode("null")
	if err != nil || log != nil {
		t.Errorf("Decode(null) = %v, %v, want nil log", log, err)
	}

	log, err = Decode("[]")
	if err != nil || log == nil || len(log) != 0 {
		t.Errorf("Decode([]) = %v, %v, want empty non-nil log", log, err)
	}

	log, err = Decode(`[{"time":"4:05 PM","mood":6,"stress":2,"healthIssues":["Eyes"]}]`)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(log) != 1 || log[0].HealthScore != 0 || log[0].HealthIssues[0] != "Eyes" {
		t.Errorf("Decode() = %+v", log)
	}

	if _, err := Decode(`{"mood":1}`); err == nil {
		t.Error("Decode(object) = nil, want error")
	}
}
