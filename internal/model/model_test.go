package model

import (
	"testing"
	"time"
)

func TestStatusNext_FullCycleReturnsToStart(t *testing.T) {
	starts := []Status{
		StatusApplied,
		StatusInterviewing,
		StatusOffer,
		StatusRejected,
		StatusGhosted,
	}
	for _, start := range starts {
		s := start
		for i := 0; i < 5; i++ {
			s = s.Next()
		}
		if s != start {
			t.Fatalf("cycling 5x from %s: got %s", start, s)
		}
	}
}

func TestStatusNext_Order(t *testing.T) {
	want := []Status{
		StatusInterviewing,
		StatusOffer,
		StatusRejected,
		StatusGhosted,
		StatusApplied,
	}
	s := StatusApplied
	for i, w := range want {
		s = s.Next()
		if s != w {
			t.Fatalf("step %d: expected %s; got %s", i+1, w, s)
		}
	}
}

func TestStatusNext_UnknownValueReentersCycle(t *testing.T) {
	if got := Status("Pending").Next(); got != StatusApplied {
		t.Fatalf("expected unknown status to advance to %s; got %s", StatusApplied, got)
	}
}

func TestNewJob(t *testing.T) {
	before := time.Now().UTC()
	j := NewJob(3, "Acme", "Engineer", "http://acme.example/job")
	after := time.Now().UTC()

	if j.ID != 3 {
		t.Fatalf("id: got %d", j.ID)
	}
	if j.Company != "Acme" || j.Role != "Engineer" || j.PostLink != "http://acme.example/job" {
		t.Fatalf("fields: got %+v", j)
	}
	if j.Status != StatusApplied {
		t.Fatalf("status: got %s", j.Status)
	}
	if j.Notes != "" {
		t.Fatalf("notes should start empty; got %q", j.Notes)
	}
	if j.DateApplied.Before(before) || j.DateApplied.After(after) {
		t.Fatalf("date_applied %v outside [%v, %v]", j.DateApplied, before, after)
	}
}

func TestCycleStatus_MutatesOnlyStatus(t *testing.T) {
	j := NewJob(1, "Acme", "Engineer", "")
	applied := j.DateApplied
	j.CycleStatus()
	if j.Status != StatusInterviewing {
		t.Fatalf("status after cycle: got %s", j.Status)
	}
	if j.DateApplied != applied {
		t.Fatalf("date_applied changed on cycle")
	}
}
