package validation

import "testing"

func TestTask_TitleRequired(t *testing.T) {
	r := Task("   ", "", "")
	if r.Ok() {
		t.Fatal("expected a missing-field issue for a blank title")
	}
	if r.Issues[0].Kind != IssueMissingField {
		t.Errorf("expected %q, got %q", IssueMissingField, r.Issues[0].Kind)
	}
}

func TestTask_UnknownStatusAndPriority(t *testing.T) {
	r := Task("ok", "Snoozed", "Urgent")
	if len(r.Issues) != 2 {
		t.Fatalf("expected 2 issues, got %d: %v", len(r.Issues), r.Issues)
	}
	for _, issue := range r.Issues {
		if issue.Kind != IssueUnknownValue {
			t.Errorf("expected unknown_value issues, got %q", issue.Kind)
		}
	}
}

func TestTask_EmptyEnumFieldsSkipped(t *testing.T) {
	if r := Task("ok", "", ""); !r.Ok() {
		t.Errorf("empty status and priority are the caller's defaults, got %v", r.Issues)
	}
}

func TestOrder(t *testing.T) {
	if r := Order("Aoife", "Wreath", "45.50", "2026-09-01", "Pending", "Etsy", "Shipped"); !r.Ok() {
		t.Errorf("expected a clean result, got %v", r.Issues)
	}

	r := Order("", "", "abc", "01/09/2026", "Nope", "Fax", "Teleport")
	if len(r.Issues) != 7 {
		t.Errorf("expected 7 issues, got %d: %v", len(r.Issues), r.Issues)
	}

	if r := Order("Aoife", "Wreath", "", "", "", "", ""); !r.Ok() {
		t.Errorf("price and due date are optional, got %v", r.Issues)
	}
}

func TestReminder(t *testing.T) {
	if r := Reminder("bins out", "2026-08-25", "Will"); !r.Ok() {
		t.Errorf("expected a clean result, got %v", r.Issues)
	}
	if r := Reminder("", "not-a-date", "Nobody"); len(r.Issues) != 3 {
		t.Errorf("expected 3 issues, got %v", r.Issues)
	}
	if r := Reminder("bins out", "", ""); !r.Ok() {
		t.Errorf("due date and assignee are optional, got %v", r.Issues)
	}
}

func TestProfile(t *testing.T) {
	if r := Profile("Will", "1234"); !r.Ok() {
		t.Errorf("expected a clean result, got %v", r.Issues)
	}
	if r := Profile("Will", ""); !r.Ok() {
		t.Errorf("a blank PIN is allowed, got %v", r.Issues)
	}
	if r := Profile("", "12"); len(r.Issues) != 2 {
		t.Errorf("expected name and PIN issues, got %v", r.Issues)
	}
}

func TestDate(t *testing.T) {
	if r := Date(""); !r.Ok() {
		t.Error("empty date is fine")
	}
	if r := Date("2026-08-23"); !r.Ok() {
		t.Error("ISO date should pass")
	}
	if r := Date("23-08-2026"); r.Ok() {
		t.Error("expected an invalid-date issue")
	}
}

func TestResultErr_JoinsDescriptions(t *testing.T) {
	r := Task("", "Snoozed", "")
	err := r.Err()
	if err == nil {
		t.Fatal("expected an error")
	}
	if len(err.Error()) == 0 {
		t.Error("expected a message")
	}

	var clean Result
	if clean.Err() != nil {
		t.Error("a clean result folds to nil")
	}
}
