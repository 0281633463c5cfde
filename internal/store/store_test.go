package store

import (
	"errors"
	"testing"
	"time"

	"hivemarket/internal/models"
)

func validInput() CreateProjectInput {
	return CreateProjectInput{
		Title:       "Design a landing page",
		Description: "One page, responsive.",
		Skills:      []string{"Figma", "CSS"},
		Budget:      "1500",
		Deadline:    "2024-01-15",
	}
}

func TestCreateProject(t *testing.T) {
	s := NewSeeded()
	before := time.Now()

	p, err := s.CreateProject(validInput(), "client1")
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	if p.Status != models.StatusOpen {
		t.Errorf("status: got %s, want open", p.Status)
	}
	if p.ClientID != "client1" {
		t.Errorf("clientId: got %s", p.ClientID)
	}
	if p.Bids == nil || len(p.Bids) != 0 {
		t.Errorf("bids: got %v, want empty", p.Bids)
	}
	if p.Budget != 1500 {
		t.Errorf("budget: got %v", p.Budget)
	}
	if p.Deadline.Format("2006-01-02") != "2024-01-15" {
		t.Errorf("deadline: got %v", p.Deadline)
	}
	if p.CreatedAt.Before(before) {
		t.Errorf("createdAt %v is earlier than invocation time %v", p.CreatedAt, before)
	}
	if p.ID == "" {
		t.Error("id not assigned")
	}

	// Most-recent-first ordering is part of the contract.
	if got := s.Projects()[0].ID; got != p.ID {
		t.Errorf("new project not first: got %s", got)
	}
}

func TestCreateProjectValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateProjectInput)
		author string
	}{
		{"budget not a number", func(in *CreateProjectInput) { in.Budget = "lots" }, "client1"},
		{"budget negative", func(in *CreateProjectInput) { in.Budget = "-20" }, "client1"},
		{"budget zero", func(in *CreateProjectInput) { in.Budget = "0" }, "client1"},
		{"deadline unparseable", func(in *CreateProjectInput) { in.Deadline = "whenever" }, "client1"},
		{"missing title", func(in *CreateProjectInput) { in.Title = "" }, "client1"},
		{"author is a freelancer", func(in *CreateProjectInput) {}, "freelancer1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSeeded()
			in := validInput()
			tt.mutate(&in)

			_, err := s.CreateProject(in, tt.author)
			var verr *models.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got %v, want ValidationError", err)
			}
			if len(s.Projects()) != 5 {
				t.Error("failed creation mutated the collection")
			}
		})
	}
}

func TestCreateProjectUnknownAuthor(t *testing.T) {
	s := NewSeeded()
	_, err := s.CreateProject(validInput(), "nobody")
	var nferr *models.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
}

func TestAcceptBid(t *testing.T) {
	s := NewSeeded()

	p, err := s.AcceptBid("1", "freelancer1")
	if err != nil {
		t.Fatalf("AcceptBid: %v", err)
	}
	if p.Status != models.StatusInProgress {
		t.Errorf("status: got %s, want in-progress", p.Status)
	}
	if p.FreelancerID != "freelancer1" {
		t.Errorf("freelancerId: got %s", p.FreelancerID)
	}

	// A second acceptance must fail and leave the first assignment alone.
	_, err = s.AcceptBid("1", "freelancer2")
	var serr *models.InvalidStateError
	if !errors.As(err, &serr) {
		t.Fatalf("second accept: got %v, want InvalidStateError", err)
	}

	current, err := s.ProjectByID("1")
	if err != nil {
		t.Fatal(err)
	}
	if current.FreelancerID != "freelancer1" || current.Status != models.StatusInProgress {
		t.Errorf("second accept changed the project: %s/%s", current.Status, current.FreelancerID)
	}
}

func TestAcceptBidFailures(t *testing.T) {
	s := NewSeeded()

	if _, err := s.AcceptBid("missing", "freelancer1"); err != nil {
		var nferr *models.NotFoundError
		if !errors.As(err, &nferr) {
			t.Errorf("missing project: got %v, want NotFoundError", err)
		}
	} else {
		t.Error("missing project: no error")
	}

	if _, err := s.AcceptBid("1", "nobody"); err != nil {
		var nferr *models.NotFoundError
		if !errors.As(err, &nferr) {
			t.Errorf("missing freelancer: got %v, want NotFoundError", err)
		}
	} else {
		t.Error("missing freelancer: no error")
	}

	if _, err := s.AcceptBid("3", "client1"); err != nil {
		var verr *models.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("client assignee: got %v, want ValidationError", err)
		}
	} else {
		t.Error("client assignee: no error")
	}

	// Seeded project "2" is already in-progress.
	_, err := s.AcceptBid("2", "freelancer1")
	var serr *models.InvalidStateError
	if !errors.As(err, &serr) {
		t.Errorf("in-progress project: got %v, want InvalidStateError", err)
	}
}

func TestSubmitBid(t *testing.T) {
	s := NewSeeded()

	bid, err := s.SubmitBid(SubmitBidInput{
		ProjectID:    "1",
		FreelancerID: "freelancer2",
		Message:      "Happy to help",
		Amount:       1200,
		IsQuickBid:   true,
	})
	if err != nil {
		t.Fatalf("SubmitBid: %v", err)
	}
	if !bid.IsQuickBid {
		t.Error("quick bid flag dropped")
	}
	if bid.ProjectID != "1" || bid.FreelancerID != "freelancer2" {
		t.Errorf("bid references wrong entities: %+v", bid)
	}

	p, err := s.ProjectByID("1")
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Bids) != 1 || p.Bids[0].ID != bid.ID {
		t.Errorf("bid not appended to project: %+v", p.Bids)
	}
}

func TestSubmitBidFailures(t *testing.T) {
	s := NewSeeded()

	tests := []struct {
		name  string
		input SubmitBidInput
		check func(error) bool
	}{
		{
			"non-open project",
			SubmitBidInput{ProjectID: "2", FreelancerID: "freelancer2", Amount: 100},
			isInvalidState,
		},
		{
			"missing project",
			SubmitBidInput{ProjectID: "missing", FreelancerID: "freelancer2", Amount: 100},
			isNotFound,
		},
		{
			"client bidder",
			SubmitBidInput{ProjectID: "1", FreelancerID: "client2", Amount: 100},
			isValidation,
		},
		{
			"non-positive amount",
			SubmitBidInput{ProjectID: "1", FreelancerID: "freelancer2", Amount: 0},
			isValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.SubmitBid(tt.input)
			if err == nil {
				t.Fatal("no error")
			}
			if !tt.check(err) {
				t.Errorf("wrong error class: %v", err)
			}
		})
	}
}

func isValidation(err error) bool {
	var e *models.ValidationError
	return errors.As(err, &e)
}

func isNotFound(err error) bool {
	var e *models.NotFoundError
	return errors.As(err, &e)
}

func isInvalidState(err error) bool {
	var e *models.InvalidStateError
	return errors.As(err, &e)
}

func TestReportProgress(t *testing.T) {
	s := NewSeeded()

	p, err := s.ReportProgress("2", 90, "Final versions delivered")
	if err != nil {
		t.Fatalf("ReportProgress: %v", err)
	}
	if p.Progress != 90 || p.LastUpdate != "Final versions delivered" {
		t.Errorf("got %d %q", p.Progress, p.LastUpdate)
	}

	if _, err := s.ReportProgress("1", 10, "started"); !isInvalidState(err) {
		t.Errorf("open project: got %v, want InvalidStateError", err)
	}
	if _, err := s.ReportProgress("2", 150, "over"); !isValidation(err) {
		t.Errorf("out of range: got %v, want ValidationError", err)
	}
	if _, err := s.ReportProgress("missing", 10, ""); !isNotFound(err) {
		t.Errorf("missing project: got %v, want NotFoundError", err)
	}
}

func TestUpdateUser(t *testing.T) {
	s := NewSeeded()

	u, err := s.UserByID("freelancer1")
	if err != nil {
		t.Fatal(err)
	}
	u.Name = "Alexandra Chen"
	u.Freelancer.Bio = "Updated bio"

	saved, err := s.UpdateUser(u)
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if saved.Name != "Alexandra Chen" {
		t.Errorf("name not updated: %s", saved.Name)
	}

	again, err := s.UserByID("freelancer1")
	if err != nil {
		t.Fatal(err)
	}
	if again.Freelancer.Bio != "Updated bio" {
		t.Errorf("bio not persisted: %s", again.Freelancer.Bio)
	}
}

func TestUpdateUserTypeImmutable(t *testing.T) {
	s := NewSeeded()

	u, err := s.UserByID("freelancer1")
	if err != nil {
		t.Fatal(err)
	}
	u.Type = models.TypeClient

	_, err = s.UpdateUser(u)
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
}

func TestSendMessage(t *testing.T) {
	s := NewSeeded()

	if _, err := s.SendMessage("freelancer1", "client1", "Hi there", ""); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if _, err := s.SendMessage("client1", "freelancer1", "", "👍"); err != nil {
		t.Fatalf("SendMessage emoji: %v", err)
	}

	// Symmetric: both directions see the same history.
	got := s.MessagesBetween("client1", "freelancer1")
	if len(got) != 2 {
		t.Fatalf("messages: got %d, want 2", len(got))
	}
	if got[0].Content != "Hi there" || got[1].Emoji != "👍" {
		t.Errorf("history out of order: %+v", got)
	}

	if others := s.MessagesBetween("client2", "freelancer1"); len(others) != 0 {
		t.Errorf("unrelated pair sees %d messages", len(others))
	}

	if _, err := s.SendMessage("ghost", "client1", "boo", ""); err == nil {
		t.Error("unknown sender accepted")
	}
	if _, err := s.SendMessage("client1", "client1", "", ""); err == nil {
		t.Error("empty message accepted")
	}
}

func TestRegisterUser(t *testing.T) {
	s := New()

	u, err := s.RegisterUser(&models.User{Name: "New Client", Email: "c@x.com", Type: models.TypeClient})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if u.ID == "" {
		t.Error("no id assigned")
	}

	if _, err := s.RegisterUser(&models.User{ID: u.ID, Name: "Dup", Type: models.TypeClient}); err == nil {
		t.Error("duplicate id accepted")
	}
	if _, err := s.RegisterUser(&models.User{Name: "Odd", Type: "admin"}); err == nil {
		t.Error("unknown type accepted")
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	s := NewSeeded()

	snapshot := s.Projects()[0]
	snapshot.Title = "tampered"
	snapshot.Bids = append(snapshot.Bids, models.Bid{ID: "fake"})

	fresh, err := s.ProjectByID(snapshot.ID)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.Title == "tampered" || len(fresh.Bids) != 0 {
		t.Error("view-held snapshot mutated the store")
	}

	// Snapshots taken before a mutation keep their old contents.
	before, err := s.ProjectByID("1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.AcceptBid("1", "freelancer1"); err != nil {
		t.Fatal(err)
	}
	if before.Status != models.StatusOpen {
		t.Error("earlier snapshot observed a later mutation")
	}
}
