package engine

import "testing"

func TestRemoveDuplicates(t *testing.T) {
	e := newTestEngine(t, "and with")
	mustAddDoc(t, e, 1, "funny pet and nasty rat", 0, nil)
	mustAddDoc(t, e, 2, "funny pet with curly hair", 0, nil)
	mustAddDoc(t, e, 3, "funny pet and not very nasty rat", 0, nil)
	mustAddDoc(t, e, 4, "pet with rat and rat and rat", 0, nil)
	mustAddDoc(t, e, 5, "nasty rat funny pet", 0, nil)
	mustAddDoc(t, e, 6, "funny pet with curly hair", 0, nil)

	RemoveDuplicates(e)

	if got := e.GetDocumentCount(); got != 4 {
		t.Fatalf("GetDocumentCount() after RemoveDuplicates = %d, want 4", got)
	}
	for _, id := range []int32{1, 2, 3, 4} {
		if _, found := contains(e.LiveIDs(), id); !found {
			t.Errorf("expected id %d to survive RemoveDuplicates, live ids = %v", id, e.LiveIDs())
		}
	}
	for _, id := range []int32{5, 6} {
		if _, found := contains(e.LiveIDs(), id); found {
			t.Errorf("expected id %d to be removed as a duplicate, live ids = %v", id, e.LiveIDs())
		}
	}
}

func contains(ids []int32, id int32) (int, bool) {
	for i, v := range ids {
		if v == id {
			return i, true
		}
	}
	return -1, false
}
