package anim

import "testing"

func TestHistory_SnapshotOrder(t *testing.T) {
	h := NewHistory(3)
	if got := h.Snapshot(5); got != nil {
		t.Fatalf("empty Snapshot = %v, want nil", got)
	}

	h.Add(Settled, 0, 1)
	h.Add(Settled, 1, 1)
	got := h.Snapshot(5)
	if len(got) != 2 || got[0].Index != 0 || got[1].Index != 1 {
		t.Fatalf("Snapshot = %+v, want nodes 0, 1", got)
	}

	h.Add(Settled, 2, 1)
	h.Add(BoundaryReached, 2, -1)
	got = h.Snapshot(5)
	if len(got) != 3 {
		t.Fatalf("Snapshot len = %d, want 3", len(got))
	}
	wantSeq := []uint64{2, 3, 4}
	for i, r := range got {
		if r.Seq != wantSeq[i] {
			t.Errorf("Snapshot[%d].Seq = %d, want %d", i, r.Seq, wantSeq[i])
		}
	}
	if last := got[2]; last.Event != BoundaryReached || last.Dir != -1 {
		t.Errorf("newest record = %+v, want boundary with dir -1", last)
	}
	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}
}

func TestHistory_SnapshotSubset(t *testing.T) {
	h := NewHistory(4)
	for i := 0; i < 6; i++ {
		h.Add(Settled, i, 1)
	}
	got := h.Snapshot(2)
	if len(got) != 2 || got[0].Index != 4 || got[1].Index != 5 {
		t.Errorf("Snapshot(2) = %+v, want nodes 4, 5", got)
	}
}

func TestNewHistory_MinimumSize(t *testing.T) {
	h := NewHistory(0)
	h.Add(Settled, 1, 1)
	h.Add(Settled, 2, 1)
	if got := h.Snapshot(10); len(got) != 1 || got[0].Index != 2 {
		t.Errorf("Snapshot = %+v, want only node 2", got)
	}
}
