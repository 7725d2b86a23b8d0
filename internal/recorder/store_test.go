package recorder

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/allbin/go-ka3005p"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "samples.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInsertAndLatest(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	withSetPoints := ka3005p.Status{
		Flags:     0x41,
		Voltage:   12,
		Current:   0.5,
		SetPoints: &ka3005p.SetPoints{Voltage: 12, Current: 1},
	}
	withoutSetPoints := ka3005p.Status{Flags: 0x00, Voltage: 3.3, Current: 0.125}

	if _, err := store.Insert(ctx, "/dev/ttyACM0", base, withSetPoints); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if _, err := store.Insert(ctx, "/dev/ttyACM0", base.Add(time.Second), withoutSetPoints); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if _, err := store.Insert(ctx, "/dev/ttyACM1", base, withoutSetPoints); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	samples, err := store.Latest(ctx, "/dev/ttyACM0", 0)
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}

	newest := samples[0]
	if newest.Status.Voltage != 3.3 || newest.Status.SetPoints != nil {
		t.Errorf("newest sample = %+v", newest.Status)
	}
	if !newest.Timestamp.Equal(base.Add(time.Second)) {
		t.Errorf("timestamp = %v", newest.Timestamp)
	}

	oldest := samples[1]
	if oldest.Status.Flags != 0x41 {
		t.Errorf("flags = %#x", oldest.Status.Flags.Byte())
	}
	if oldest.Status.SetPoints == nil || oldest.Status.SetPoints.Current != 1 {
		t.Errorf("set points = %+v", oldest.Status.SetPoints)
	}

	limited, err := store.Latest(ctx, "/dev/ttyACM0", 1)
	if err != nil || len(limited) != 1 {
		t.Errorf("Latest(limit 1) = %d samples, %v", len(limited), err)
	}

	n, err := store.Count(ctx, "/dev/ttyACM1")
	if err != nil || n != 1 {
		t.Errorf("Count = %d, %v", n, err)
	}

	all, err := store.Latest(ctx, "", 0)
	if err != nil || len(all) != 3 {
		t.Errorf("Latest(every port) = %d samples, %v; expected 3", len(all), err)
	}
}

func TestOpenReusesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.db")
	ctx := context.Background()

	first, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := first.Insert(ctx, "p", time.Now(), ka3005p.Status{}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()
	if n, _ := second.Count(ctx, "p"); n != 1 {
		t.Errorf("expected existing sample to survive reopen, got %d", n)
	}
}

type scriptedReader struct {
	results []error
	calls   int
}

func (s *scriptedReader) Status() (ka3005p.Status, error) {
	i := s.calls
	s.calls++
	if i < len(s.results) && s.results[i] != nil {
		return ka3005p.Status{}, s.results[i]
	}
	return ka3005p.Status{Voltage: float32(i)}, nil
}

func TestRecorderRunStopsAtCount(t *testing.T) {
	store := openTestStore(t)
	reader := &scriptedReader{results: []error{nil, ka3005p.ErrEmptyResponse, nil, nil}}
	rec := New(store, reader, "/dev/ttyACM0", time.Millisecond, nil)

	var seen []float32
	stored, err := rec.Run(context.Background(), 3, func(s ka3005p.Status) {
		seen = append(seen, s.Voltage)
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if stored != 3 {
		t.Errorf("stored = %d, expected 3", stored)
	}
	if reader.calls != 4 {
		t.Errorf("expected the failed read to be retried, calls = %d", reader.calls)
	}
	if len(seen) != 3 || seen[1] != 2 {
		t.Errorf("onSample saw %v", seen)
	}
}

func TestRecorderRunStopsOnCancel(t *testing.T) {
	store := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	rec := New(store, &scriptedReader{}, "p", time.Millisecond, nil)

	stored, err := rec.Run(ctx, 0, func(ka3005p.Status) { cancel() })
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if stored != 1 {
		t.Errorf("stored = %d, expected 1", stored)
	}
}

func TestRecorderSample(t *testing.T) {
	store := openTestStore(t)
	rec := New(store, &scriptedReader{results: []error{errors.New("offline")}}, "p", time.Second, nil)

	if _, err := rec.Sample(context.Background()); err == nil {
		t.Error("expected read error")
	}
	if _, err := rec.Sample(context.Background()); err != nil {
		t.Errorf("Sample failed: %v", err)
	}
	if n, _ := store.Count(context.Background(), "p"); n != 1 {
		t.Errorf("Count = %d, expected 1", n)
	}
}
