package tui

import (
	"strings"
	"testing"

	"career-cli/internal/model"
)

func TestView_HeaderStats(t *testing.T) {
	jobs := testJobs(3)
	jobs[1].Status = model.StatusInterviewing
	jobs[2].Status = model.StatusOffer
	m := newTestModel(t, jobs)
	m.width = 100
	m.height = 24

	out := m.View()
	if !strings.Contains(out, "Total: 3") || !strings.Contains(out, "Interviewing: 1") || !strings.Contains(out, "Offers: 1") {
		t.Fatalf("header stats missing:\n%s", out)
	}
}

func TestView_SelectedRowMarker(t *testing.T) {
	jobs := testJobs(2)
	jobs[0].Company = "Acme"
	jobs[1].Company = "Globex"
	m := newTestModel(t, jobs)
	m.width = 100
	m.height = 24
	m.selected = 1

	out := m.View()
	var marked string
	for _, ln := range strings.Split(out, "\n") {
		if strings.Contains(ln, ">> ") {
			marked = ln
		}
	}
	if marked == "" {
		t.Fatalf("expected a marked row:\n%s", out)
	}
	if !strings.Contains(marked, "Globex") {
		t.Fatalf("marker should follow the selection; got %q", marked)
	}
}

func TestView_EmptyLinkRendersDash(t *testing.T) {
	jobs := testJobs(1)
	jobs[0].PostLink = ""
	m := newTestModel(t, jobs)
	m.width = 100
	m.height = 24

	out := m.View()
	if !strings.Contains(out, "| - ") {
		t.Fatalf("empty links should render as '-':\n%s", out)
	}
}

func TestView_EmptyListHint(t *testing.T) {
	m := newTestModel(t, nil)
	m.width = 80
	m.height = 24
	if out := m.View(); !strings.Contains(out, "Press 'a' to add one") {
		t.Fatalf("expected empty-list hint:\n%s", out)
	}
}

func TestInputModalTitle_PerFieldAndTarget(t *testing.T) {
	m := newTestModel(t, testJobs(1))

	m.beginAdd()
	if got := m.inputModalTitle(); got != "Enter Company Name" {
		t.Fatalf("company title: got %q", got)
	}
	m.input.SetValue("Acme")
	m.submitField()
	if got := m.inputModalTitle(); got != "Enter Role Title" {
		t.Fatalf("role title: got %q", got)
	}
	m.input.SetValue("Engineer")
	m.submitField()
	if got := m.inputModalTitle(); got != "Enter Job Link (optional)" {
		t.Fatalf("new-link title: got %q", got)
	}
	m.cancelInput()

	m.beginEditLink()
	if got := m.inputModalTitle(); got != "Edit Job Link" {
		t.Fatalf("edit-link title: got %q", got)
	}
}

func TestView_EditingShowsModal(t *testing.T) {
	m := newTestModel(t, testJobs(1))
	m.width = 100
	m.height = 24
	m.beginAdd()

	out := m.View()
	if !strings.Contains(out, "Enter Company Name") {
		t.Fatalf("editing view should show the modal title:\n%s", out)
	}
	if !strings.Contains(out, "enter: confirm") {
		t.Fatalf("modal should show its key hints:\n%s", out)
	}
}
