package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"mecanica_ledger/internal/adapter/persistence/storage"
	"mecanica_ledger/internal/usecase/interfaces"
	mock_interfaces "mecanica_ledger/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type part struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (p part) GetID() string { return p.ID }

func TestRecordStore_ReadAll(t *testing.T) {
	ctx := context.Background()

	t.Run("missing collection", func(t *testing.T) {
		s := New[part](storage.NewMemoryStorage(), nil)
		items, err := s.ReadAll(ctx, "parts")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if items == nil || len(items) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", items)
		}
	})

	t.Run("malformed collection reads as empty", func(t *testing.T) {
		mem := storage.NewMemoryStorage()
		_ = mem.Save(ctx, "parts", []byte(`{not json`))
		s := New[part](mem, nil)

		items, err := s.ReadAll(ctx, "parts")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("expected empty, got %+v", items)
		}
	})

	t.Run("null collection reads as empty", func(t *testing.T) {
		mem := storage.NewMemoryStorage()
		_ = mem.Save(ctx, "parts", []byte(`null`))
		s := New[part](mem, nil)

		items, _ := s.ReadAll(ctx, "parts")
		if items == nil || len(items) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", items)
		}
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		st := mock_interfaces.NewMockICollectionStorage(ctrl)
		st.EXPECT().Load(gomock.Any(), "parts").Return(nil, false, errors.New("db"))

		s := New[part](st, nil)
		if _, err := s.ReadAll(ctx, "parts"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestRecordStore_WithoutStorage(t *testing.T) {
	ctx := context.Background()
	s := New[part](nil, nil)

	if err := s.WriteAll(ctx, "parts", []part{{ID: "p-1"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, err := s.Append(ctx, "parts", part{ID: "p-2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "p-2" {
		t.Fatalf("expected only the appended item, got %+v", items)
	}
	items, err = s.ReadAll(ctx, "parts")
	if err != nil || len(items) != 0 {
		t.Fatalf("expected empty read, got %+v err=%v", items, err)
	}
}

func TestRecordStore_AppendPreservesOrder(t *testing.T) {
	ctx := context.Background()
	s := New[part](storage.NewMemoryStorage(), nil)

	for _, id := range []string{"p-1", "p-2", "p-3"} {
		if _, err := s.Append(ctx, "parts", part{ID: id}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	items, _ := s.ReadAll(ctx, "parts")
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, id := range []string{"p-1", "p-2", "p-3"} {
		if items[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, items[i].ID)
		}
	}
}

func TestRecordStore_UpdateByID(t *testing.T) {
	ctx := context.Background()
	seed := []part{
		{ID: "p-1", Name: "filter", Price: 30},
		{ID: "p-2", Name: "oil", Price: 55.5},
		{ID: "p-3", Name: "belt", Price: 120},
	}

	t.Run("isolates the target", func(t *testing.T) {
		s := New[part](storage.NewMemoryStorage(), nil)
		if err := s.WriteAll(ctx, "parts", seed); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		items, err := s.UpdateByID(ctx, "parts", "p-2", func(p part) part {
			p.Price = 60
			return p
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, _ := s.ReadAll(ctx, "parts")
		for _, got := range [][]part{items, stored} {
			if len(got) != 3 || got[1].Price != 60 {
				t.Fatalf("unexpected update result: %+v", got)
			}
			for _, i := range []int{0, 2} {
				want, _ := json.Marshal(seed[i])
				have, _ := json.Marshal(got[i])
				if string(want) != string(have) {
					t.Fatalf("item %d changed: %s -> %s", i, want, have)
				}
			}
		}
	})

	t.Run("unknown id writes back unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		st := mock_interfaces.NewMockICollectionStorage(ctrl)
		raw, _ := json.Marshal(seed)
		st.EXPECT().Load(gomock.Any(), "parts").Return(raw, true, nil)
		st.EXPECT().Save(gomock.Any(), "parts", raw).Return(nil)

		s := New[part](st, nil)
		called := false
		items, err := s.UpdateByID(ctx, "parts", "missing", func(p part) part {
			called = true
			return p
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if called || len(items) != 3 {
			t.Fatalf("transform must not run; items=%+v", items)
		}
	})
}

func TestBatch_Commit(t *testing.T) {
	ctx := context.Background()

	t.Run("single collection uses Save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		st := mock_interfaces.NewMockICollectionStorage(ctrl)
		st.EXPECT().Save(gomock.Any(), "parts", []byte(`[{"id":"p-1","name":"","price":0}]`)).Return(nil)

		s := New[part](st, nil)
		b := NewBatch(st)
		_ = s.Stage(b, "parts", []part{{ID: "p-0"}})
		_ = s.Stage(b, "parts", []part{{ID: "p-1"}})
		if b.Len() != 1 {
			t.Fatalf("expected restaged key to be replaced, got %d", b.Len())
		}
		if err := b.Commit(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("several collections use SaveBatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		st := mock_interfaces.NewMockICollectionStorage(ctrl)
		st.EXPECT().SaveBatch(gomock.Any(), gomock.Len(2)).DoAndReturn(
			func(_ context.Context, blobs []interfaces.CollectionBlob) error {
				if blobs[0].Key != "a" || blobs[1].Key != "b" {
					t.Fatalf("unexpected order: %+v", blobs)
				}
				return errors.New("tx aborted")
			},
		)

		s := New[part](st, nil)
		b := NewBatch(st)
		_ = s.Stage(b, "a", nil)
		_ = s.Stage(b, "b", nil)
		if err := b.Commit(ctx); err == nil || err.Error() != "tx aborted" {
			t.Fatalf("expected tx aborted, got %v", err)
		}
	})

	t.Run("nil storage", func(t *testing.T) {
		b := NewBatch(nil)
		_ = New[part](nil, nil).Stage(b, "parts", nil)
		if err := b.Commit(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestFindByID(t *testing.T) {
	items := []part{{ID: "p-1"}, {ID: "p-2"}}
	if got, ok := FindByID(items, "p-2"); !ok || got.ID != "p-2" {
		t.Fatalf("expected p-2, got %+v ok=%v", got, ok)
	}
	if _, ok := FindByID(items, "p-9"); ok {
		t.Fatalf("expected miss")
	}
}
